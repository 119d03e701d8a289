package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/export"
	"github.com/Cloudy680/Color-converter/internal/ir"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a solid preview image of a color",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("color", "c", "", "Color as hex")
	exportCmd.Flags().StringP("output", "o", "", "Output image file")
	exportCmd.Flags().Int("width", 0, "Image width (default from config)")
	exportCmd.Flags().Int("height", 0, "Image height (default from config)")
	exportCmd.Flags().String("format", "", "ppm, png, jpeg, bmp or tiff (default from extension)")
	exportCmd.Flags().Int("quality", 0, "JPEG quality (1-100, default from config)")
	exportCmd.MarkFlagRequired("color")
	exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	hex, _ := cmd.Flags().GetString("color")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	c, err := color.HexToRGB(hex)
	if err != nil {
		return err
	}
	if width == 0 {
		width = cfg.Export.Width
	}
	if height == 0 {
		height = cfg.Export.Height
	}
	if quality == 0 {
		quality = cfg.Export.Quality
	}

	format, err := outputFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	img, err := ir.Solid(c, width, height)
	if err != nil {
		return err
	}
	if err := writeImage(outputPath, img, format, quality); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).Status(ui.Success,
		fmt.Sprintf("Exported %s %dx%d %s → %s", c.Hex(), width, height, format, outputPath))
	return nil
}

// outputFormat picks the explicit format, then the file extension, then
// the configured default.
func outputFormat(explicit, path string) (export.Format, error) {
	if explicit != "" {
		return export.ParseFormat(explicit)
	}
	if f, err := export.FormatFromPath(path); err == nil {
		return f, nil
	}
	return cfg.ExportFormat(), nil
}

func writeImage(path string, img *ir.Image, format export.Format, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := export.Encode(f, img, format, export.EncoderOptions{Quality: quality}); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Debug("image written", "path", path, "format", format, "width", img.Width, "height", img.Height)
	return nil
}
