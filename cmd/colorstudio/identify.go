package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/export"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image and report its size and color",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := export.Identify(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	cmyk, _ := info.Color.CMYK()
	hls, _ := info.Color.HLS()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:       %s\n", path)
	fmt.Fprintf(w, "Format:     %s\n", info.Format)
	fmt.Fprintf(w, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(w, "File size:  %d bytes (%.1f KB)\n", st.Size(), float64(st.Size())/1024)
	if info.Uniform {
		fmt.Fprintf(w, "Color:      %s (solid)\n", strings.ToUpper(info.Color.Hex()))
	} else {
		fmt.Fprintf(w, "Color:      %s at 0,0 (not uniform)\n", strings.ToUpper(info.Color.Hex()))
	}
	fmt.Fprintf(w, "  RGB:      %s\n", info.Color)
	fmt.Fprintf(w, "  CMYK:     %.4f, %.4f, %.4f, %.4f\n", cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	fmt.Fprintf(w, "  HLS:      %.4f, %.4f, %.4f\n", hls.H, hls.L, hls.S)
	return nil
}
