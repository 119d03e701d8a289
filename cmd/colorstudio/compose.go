package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/pipeline"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Convert raw CMYK data back to an RGB image",
	RunE:  runCompose,
}

func init() {
	composeCmd.Flags().StringP("input", "i", "", "Input raw CMYK file")
	composeCmd.Flags().StringP("output", "o", "", "Output image file")
	composeCmd.Flags().Int("width", 0, "Image width (default from sidecar)")
	composeCmd.Flags().Int("height", 0, "Image height (default from sidecar)")
	composeCmd.Flags().String("format", "", "ppm, png, jpeg, bmp or tiff (default from extension)")
	composeCmd.Flags().Int("quality", 0, "JPEG quality (1-100, default from config)")
	composeCmd.MarkFlagRequired("input")
	composeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if width == 0 || height == 0 {
		meta, err := pipeline.ReadMeta(inputPath)
		if err != nil {
			return fmt.Errorf("no --width/--height given: %w", err)
		}
		width, height = meta.Width, meta.Height
	}
	if quality == 0 {
		quality = cfg.Export.Quality
	}

	format, err := outputFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	img, err := pipeline.Compose(pixels, width, height)
	if err != nil {
		return err
	}
	if err := writeImage(outputPath, img, format, quality); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Composed %dx%d CMYK → %s (%s)\n", width, height, outputPath, format)
	return nil
}
