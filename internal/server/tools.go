package server

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Cloudy680/Color-converter/internal/color"
)

// --- inputs ---

type RGBInput struct {
	R float64 `json:"r" jsonschema:"red channel, 0 to 255; out-of-range values are clipped"`
	G float64 `json:"g" jsonschema:"green channel, 0 to 255; out-of-range values are clipped"`
	B float64 `json:"b" jsonschema:"blue channel, 0 to 255; out-of-range values are clipped"`
}

type CMYKInput struct {
	C float64 `json:"c" jsonschema:"cyan fraction, 0 to 1"`
	M float64 `json:"m" jsonschema:"magenta fraction, 0 to 1"`
	Y float64 `json:"y" jsonschema:"yellow fraction, 0 to 1"`
	K float64 `json:"k" jsonschema:"key (black) fraction, 0 to 1"`
}

type HLSInput struct {
	H float64 `json:"h" jsonschema:"hue as a fraction of a full turn; wraps around 1"`
	L float64 `json:"l" jsonschema:"lightness, 0 to 1"`
	S float64 `json:"s" jsonschema:"saturation, 0 to 1"`
}

type HexInput struct {
	Hex string `json:"hex" jsonschema:"color as #RRGGBB or #RGB; the leading # is optional"`
}

// --- outputs ---

type RGBOutput struct {
	R       int    `json:"r"`
	G       int    `json:"g"`
	B       int    `json:"b"`
	Hex     string `json:"hex"`
	Clipped bool   `json:"clipped"`
}

type CMYKOutput struct {
	C       float64 `json:"c"`
	M       float64 `json:"m"`
	Y       float64 `json:"y"`
	K       float64 `json:"k"`
	Clipped bool    `json:"clipped"`
}

type HLSOutput struct {
	H       float64 `json:"h"`
	L       float64 `json:"l"`
	S       float64 `json:"s"`
	Degrees float64 `json:"degrees"`
	Clipped bool    `json:"clipped"`
}

type HexOutput struct {
	Hex string `json:"hex"`
}

func ptrBool(b bool) *bool { return &b }

// RegisterTools adds the conversion tools to server.
func RegisterTools(server *mcp.Server) {
	readOnly := func(title string) *mcp.ToolAnnotations {
		return &mcp.ToolAnnotations{
			Title:          title,
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptrBool(false),
		}
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rgb_to_cmyk",
		Description: "Convert an RGB color (0-255 per channel) to CMYK fractions. Pure black maps to K=1.",
		Annotations: readOnly("RGB to CMYK"),
	}, rgbToCMYK)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cmyk_to_rgb",
		Description: "Convert CMYK fractions to an 8-bit RGB color. Reports clipped when the input was out of range.",
		Annotations: readOnly("CMYK to RGB"),
	}, cmykToRGB)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rgb_to_hls",
		Description: "Convert an RGB color to hue, lightness and saturation, each in 0-1.",
		Annotations: readOnly("RGB to HLS"),
	}, rgbToHLS)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hls_to_rgb",
		Description: "Convert hue, lightness and saturation to an 8-bit RGB color. Hue wraps around.",
		Annotations: readOnly("HLS to RGB"),
	}, hlsToRGB)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rgb_to_hex",
		Description: "Format an RGB color as a lowercase #rrggbb string.",
		Annotations: readOnly("RGB to Hex"),
	}, rgbToHex)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hex_to_rgb",
		Description: "Parse a #RRGGBB or #RGB hex color into RGB channels.",
		Annotations: readOnly("Hex to RGB"),
	}, hexToRGB)
}

func rgbOutput(c color.RGB, clipped bool) RGBOutput {
	return RGBOutput{R: c.R, G: c.G, B: c.B, Hex: strings.ToUpper(c.Hex()), Clipped: clipped}
}

func rgbToCMYK(ctx context.Context, req *mcp.CallToolRequest, in RGBInput) (*mcp.CallToolResult, CMYKOutput, error) {
	c, clipped := color.RGBToCMYK(in.R, in.G, in.B)
	observe("rgb_to_cmyk", clipped)
	return nil, CMYKOutput{C: c.C, M: c.M, Y: c.Y, K: c.K, Clipped: clipped}, nil
}

func cmykToRGB(ctx context.Context, req *mcp.CallToolRequest, in CMYKInput) (*mcp.CallToolResult, RGBOutput, error) {
	c, clipped := color.CMYKToRGB(in.C, in.M, in.Y, in.K)
	observe("cmyk_to_rgb", clipped)
	return nil, rgbOutput(c, clipped), nil
}

func rgbToHLS(ctx context.Context, req *mcp.CallToolRequest, in RGBInput) (*mcp.CallToolResult, HLSOutput, error) {
	h, clipped := color.RGBToHLS(in.R, in.G, in.B)
	observe("rgb_to_hls", clipped)
	return nil, HLSOutput{H: h.H, L: h.L, S: h.S, Degrees: h.Degrees(), Clipped: clipped}, nil
}

func hlsToRGB(ctx context.Context, req *mcp.CallToolRequest, in HLSInput) (*mcp.CallToolResult, RGBOutput, error) {
	c, clipped := color.HLSToRGB(in.H, in.L, in.S)
	observe("hls_to_rgb", clipped)
	return nil, rgbOutput(c, clipped), nil
}

func rgbToHex(ctx context.Context, req *mcp.CallToolRequest, in RGBInput) (*mcp.CallToolResult, HexOutput, error) {
	observe("rgb_to_hex", false)
	return nil, HexOutput{Hex: color.RGBToHex(in.R, in.G, in.B)}, nil
}

func hexToRGB(ctx context.Context, req *mcp.CallToolRequest, in HexInput) (*mcp.CallToolResult, RGBOutput, error) {
	c, err := color.HexToRGB(in.Hex)
	if err != nil {
		MetricHexErrors.Inc()
		return nil, RGBOutput{}, err
	}
	observe("hex_to_rgb", false)
	return nil, rgbOutput(c, false), nil
}
