package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestHandlers(t *testing.T) {
	ctx := context.Background()

	_, cmyk, err := rgbToCMYK(ctx, nil, RGBInput{R: 255, G: 128, B: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := CMYKOutput{C: 0, M: 1 - 128.0/255, Y: 1, K: 0}
	if diff := cmp.Diff(want, cmyk, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("rgb_to_cmyk mismatch (-want +got):\n%s", diff)
	}

	_, rgb, err := cmykToRGB(ctx, nil, CMYKInput{C: 0, M: 0, Y: 0, K: 2})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(RGBOutput{Hex: "#000000", Clipped: true}, rgb); diff != "" {
		t.Errorf("cmyk_to_rgb mismatch (-want +got):\n%s", diff)
	}

	_, hls, err := rgbToHLS(ctx, nil, RGBInput{R: 0, G: 0, B: 255})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(HLSOutput{H: 2.0 / 3, L: 0.5, S: 1, Degrees: 240}, hls, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("rgb_to_hls mismatch (-want +got):\n%s", diff)
	}

	_, rgb, err = hlsToRGB(ctx, nil, HLSInput{H: 1.5, L: 0.5, S: 1})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(RGBOutput{R: 0, G: 255, B: 255, Hex: "#00FFFF"}, rgb); diff != "" {
		t.Errorf("hls_to_rgb mismatch (-want +got):\n%s", diff)
	}

	_, hex, err := rgbToHex(ctx, nil, RGBInput{R: 300, G: -4, B: 171})
	if err != nil {
		t.Fatal(err)
	}
	if hex.Hex != "#ff00ab" {
		t.Errorf("rgb_to_hex = %q", hex.Hex)
	}

	if _, _, err := hexToRGB(ctx, nil, HexInput{Hex: "#12"}); err == nil {
		t.Error("hex_to_rgb accepted #12")
	}
}

// connect returns a client session talking to a fresh server in memory.
func connect(t *testing.T, logger *slog.Logger) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	server := New("test", logger)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListTools(t *testing.T) {
	cs := connect(t, discard())
	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %s is not annotated read-only", tool.Name)
		}
	}
	sort.Strings(names)
	want := []string{"cmyk_to_rgb", "hex_to_rgb", "hls_to_rgb", "rgb_to_cmyk", "rgb_to_hex", "rgb_to_hls"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tools mismatch (-want +got):\n%s", diff)
	}
}

func TestCallToolRoundTrip(t *testing.T) {
	cs := connect(t, discard())
	ctx := context.Background()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "hex_to_rgb",
		Arguments: map[string]any{"hex": "#0af"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatal(err)
	}
	var got RGBOutput
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(RGBOutput{R: 0, G: 0xaa, B: 0xff, Hex: "#00AAFF"}, got); diff != "" {
		t.Errorf("hex_to_rgb mismatch (-want +got):\n%s", diff)
	}
}

func TestCallToolHexError(t *testing.T) {
	cs := connect(t, discard())
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "hex_to_rgb",
		Arguments: map[string]any{"hex": "nothex"},
	})
	if err != nil {
		t.Fatalf("malformed hex should be a tool error, got protocol error %v", err)
	}
	if !res.IsError {
		t.Fatal("expected IsError result")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok || !strings.Contains(text.Text, "invalid hex color") {
		t.Errorf("content = %+v", res.Content)
	}
}

func TestCallToolMissingArgument(t *testing.T) {
	cs := connect(t, discard())
	_, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "rgb_to_cmyk",
		Arguments: map[string]any{"r": 1, "g": 2},
	})
	if err == nil {
		t.Fatal("expected invalid params error for missing b")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cs := connect(t, logger)

	if _, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "rgb_to_hex",
		Arguments: map[string]any{"r": 1, "g": 2, "b": 3},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "hex_to_rgb",
		Arguments: map[string]any{"hex": "??"},
	}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{`"msg":"request completed"`, `"tool":"rgb_to_hex"`, `"msg":"tool returned error"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	if _, _, err := rgbToCMYK(context.Background(), nil, RGBInput{R: 999}); err != nil {
		t.Fatal(err)
	}
	_, _, _ = hexToRGB(context.Background(), nil, HexInput{Hex: "x"})

	srv := httptest.NewServer(Handler(New("test", discard())))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`colorstudio_conversions_total{op="rgb_to_cmyk"}`,
		`colorstudio_clipped_total{op="rgb_to_cmyk"}`,
		"colorstudio_hex_errors_total",
	} {
		if !bytes.Contains(body, []byte(want)) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestRunUnknownTransport(t *testing.T) {
	err := Run(context.Background(), Options{Transport: "smoke"}, discard())
	if err == nil || !strings.Contains(err.Error(), "unknown transport") {
		t.Fatalf("Run = %v", err)
	}
}
