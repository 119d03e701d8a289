package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/swatch"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Manage the saved swatch palette",
}

func init() {
	swatchCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved swatches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPalette()
			if err != nil {
				return err
			}
			out := ui.NewPrinter(cmd.OutOrStdout())
			if p.Len() == 0 {
				out.Status(ui.Info, "No swatches saved")
				return nil
			}
			for i, hex := range p.Entries() {
				out.Line("%3d  %s %s", i, ui.Swatch(color.ParseHex(hex), 4), hex)
			}
			return nil
		},
	})
	swatchCmd.AddCommand(&cobra.Command{
		Use:   "add HEX",
		Short: "Save a color at the front of the palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPalette()
			if err != nil {
				return err
			}
			changed, err := p.Add(args[0])
			if err != nil {
				return err
			}
			out := ui.NewPrinter(cmd.OutOrStdout())
			if !changed {
				out.Status(ui.Info, "Already saved")
				return nil
			}
			if err := p.Save(cfg.SwatchFile); err != nil {
				return err
			}
			out.Status(ui.Success, "Saved "+p.Entries()[0])
			return nil
		},
	})
	swatchCmd.AddCommand(&cobra.Command{
		Use:   "rm INDEX",
		Short: "Remove the swatch at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an index", args[0])
			}
			p, err := loadPalette()
			if err != nil {
				return err
			}
			removed, err := p.Remove(i)
			if err != nil {
				return err
			}
			if err := p.Save(cfg.SwatchFile); err != nil {
				return err
			}
			ui.NewPrinter(cmd.OutOrStdout()).Status(ui.Success, "Removed "+removed)
			return nil
		},
	})
	rootCmd.AddCommand(swatchCmd)
}

func loadPalette() (*swatch.Palette, error) {
	p, err := swatch.Load(cfg.SwatchFile, cfg.MaxSwatches)
	if err != nil {
		return nil, fmt.Errorf("loading swatches: %w", err)
	}
	return p, nil
}
