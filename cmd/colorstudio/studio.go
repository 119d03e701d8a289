package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/studio"
	"github.com/Cloudy680/Color-converter/internal/swatch"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Edit a color interactively in all models at once",
	Args:  cobra.NoArgs,
	RunE:  runStudio,
}

func init() {
	studioCmd.Flags().String("color", "", "Start color as hex (default from config)")
	rootCmd.AddCommand(studioCmd)
}

func runStudio(cmd *cobra.Command, args []string) error {
	start := cfg.StartColor
	if cmd.Flags().Changed("color") {
		start, _ = cmd.Flags().GetString("color")
	}
	c, err := color.HexToRGB(start)
	if err != nil {
		return err
	}

	palette, err := swatch.Load(cfg.SwatchFile, cfg.MaxSwatches)
	if err != nil {
		return fmt.Errorf("loading swatches: %w", err)
	}

	st := studio.New(studio.Options{
		Start:        c,
		Palette:      palette,
		SwatchFile:   cfg.SwatchFile,
		ExportFormat: cfg.ExportFormat(),
		ExportWidth:  cfg.Export.Width,
		ExportHeight: cfg.Export.Height,
		Quality:      cfg.Export.Quality,
		Logger:       logger,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	logger.Debug("studio started", "color", start, "swatches", palette.Len())
	return studio.Interactive(ctx, st, os.Stdin, cmd.OutOrStdout())
}
