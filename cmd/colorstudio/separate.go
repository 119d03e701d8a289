package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/pipeline"
)

var separateCmd = &cobra.Command{
	Use:   "separate",
	Short: "Separate an RGB image into raw CMYK (raw output + JSON sidecar)",
	RunE:  runSeparate,
}

func init() {
	separateCmd.Flags().StringP("input", "i", "", "Input image (ppm, png, jpeg, bmp, tiff)")
	separateCmd.Flags().StringP("output", "o", "", "Output raw CMYK file")
	separateCmd.Flags().String("plates", "", "Also write one grayscale PNG per ink into this directory")
	separateCmd.MarkFlagRequired("input")
	separateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(separateCmd)
}

func runSeparate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	platesDir, _ := cmd.Flags().GetString("plates")

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	defer in.Close()

	result, err := pipeline.Separate(in)
	if err != nil {
		return fmt.Errorf("separation: %w", err)
	}

	metaPath, err := pipeline.WriteRaw(outputPath, result)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Separated %dx%d %s → raw CMYK (%d bytes)\n", result.Width, result.Height, result.SrcFormat, len(result.Pixels))
	fmt.Fprintf(w, "Sidecar: %s\n", metaPath)
	fmt.Fprintf(w, "Coverage: C %.1f%%  M %.1f%%  Y %.1f%%  K %.1f%%\n",
		result.Coverage[pipeline.Cyan]*100, result.Coverage[pipeline.Magenta]*100,
		result.Coverage[pipeline.Yellow]*100, result.Coverage[pipeline.Key]*100)

	if platesDir == "" {
		return nil
	}
	if err := os.MkdirAll(platesDir, 0755); err != nil {
		return fmt.Errorf("creating plates dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	for ch, name := range pipeline.ChannelNames {
		plate, err := result.Plate(ch)
		if err != nil {
			return err
		}
		path := filepath.Join(platesDir, fmt.Sprintf("%s_%s.png", base, name))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("writing plate: %w", err)
		}
		if err := png.Encode(f, plate); err != nil {
			f.Close()
			return fmt.Errorf("encoding plate %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing plate: %w", err)
		}
		fmt.Fprintf(w, "Plate %s: %s\n", name, path)
	}
	return nil
}
