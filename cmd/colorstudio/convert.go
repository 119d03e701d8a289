package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one color and print it in every model",
}

func init() {
	convertCmd.PersistentFlags().Bool("json", false, "Print the result as JSON")

	convertCmd.AddCommand(&cobra.Command{
		Use:   "rgb R G B",
		Short: "Convert from RGB (0-255 per channel)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c, clipped := color.NewRGB(v[0], v[1], v[2])
			return printConversion(cmd, c, clipped)
		},
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "cmyk C M Y K",
		Short: "Convert from CMYK (0-1 per channel)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c, clipped := color.CMYKToRGB(v[0], v[1], v[2], v[3])
			return printConversion(cmd, c, clipped)
		},
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hls H L S",
		Short: "Convert from HLS (hue as a fraction of a turn, 0-1)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			c, clipped := color.HLSToRGB(v[0], v[1], v[2])
			return printConversion(cmd, c, clipped)
		},
	})
	convertCmd.AddCommand(&cobra.Command{
		Use:   "hex VALUE",
		Short: "Convert from a #RRGGBB or #RGB hex color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.HexToRGB(args[0])
			if err != nil {
				return err
			}
			return printConversion(cmd, c, false)
		},
	})

	rootCmd.AddCommand(convertCmd)
}

func parseFloats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		v[i] = f
	}
	return v, nil
}

type conversionJSON struct {
	RGB     [3]int     `json:"rgb"`
	CMYK    [4]float64 `json:"cmyk"`
	HLS     [3]float64 `json:"hls"`
	Hex     string     `json:"hex"`
	Clipped bool       `json:"clipped"`
}

func printConversion(cmd *cobra.Command, c color.RGB, clipped bool) error {
	cmyk, _ := c.CMYK()
	hls, _ := c.HLS()
	hex := strings.ToUpper(c.Hex())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(conversionJSON{
			RGB:     [3]int{c.R, c.G, c.B},
			CMYK:    [4]float64{cmyk.C, cmyk.M, cmyk.Y, cmyk.K},
			HLS:     [3]float64{hls.H, hls.L, hls.S},
			Hex:     hex,
			Clipped: clipped,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Line("%s  %s", ui.Swatch(c, 8), ui.Heading("%s", hex))
	p.Group("Models")
	p.GroupItem("RGB", c.String())
	p.GroupItem("CMYK", fmt.Sprintf("%.4f, %.4f, %.4f, %.4f", cmyk.C, cmyk.M, cmyk.Y, cmyk.K))
	p.GroupItem("HLS", fmt.Sprintf("%.4f, %.4f, %.4f (%.1f°)", hls.H, hls.L, hls.S, hls.Degrees()))
	p.GroupItem("Hex", hex)
	p.GroupEnd()
	if clipped {
		p.Status(ui.Warning, "input was out of range and has been clipped")
	}
	return nil
}
