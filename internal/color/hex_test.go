package color

import (
	"errors"
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{"shorthand", "f0a", RGB{255, 0, 170}, false},
		{"upper with hash", "#FF00AA", RGB{255, 0, 170}, false},
		{"lower no hash", "ff00aa", RGB{255, 0, 170}, false},
		{"mixed case", "#Ff00aA", RGB{255, 0, 170}, false},
		{"surrounding space", "  #123456\n", RGB{0x12, 0x34, 0x56}, false},
		{"shorthand with hash", "#abc", RGB{0xaa, 0xbb, 0xcc}, false},
		{"black", "#000000", RGB{0, 0, 0}, false},
		{"four digits", "1234", RGB{}, true},
		{"empty", "", RGB{}, true},
		{"only hash", "#", RGB{}, true},
		{"too long", "#FFFFFFFF", RGB{}, true},
		{"not hex", "#GG0000", RGB{}, true},
		{"signed group", "+f0000", RGB{}, true},
		{"inner space", "ff 0aa", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexToRGB(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if err != nil {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("error %v is not a *FormatError", err)
				}
				if fe.Input != tt.hex {
					t.Errorf("FormatError.Input = %q, want %q", fe.Input, tt.hex)
				}
				return
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    string
	}{
		{255, 0, 170, "#ff00aa"},
		{0, 0, 0, "#000000"},
		{300, -5, 15.4, "#ff000f"},
		{15.6, 16, 254.5, "#1010fe"},
		{math.NaN(), math.Inf(1), math.Inf(-1), "#00ff00"},
	}

	for _, tt := range tests {
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBToHex(%v, %v, %v) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	rgbGrid(t, func(c RGB) {
		back, err := HexToRGB(c.Hex())
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", c.Hex(), err)
		}
		if back != c {
			t.Fatalf("hex round trip %v -> %s -> %v", c, c.Hex(), back)
		}
	})
}

func TestFormatErrorMessage(t *testing.T) {
	_, err := HexToRGB("1234")
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid hex color "1234": expected RRGGBB`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ParseHex did not panic on malformed input")
		}
	}()
	ParseHex("nope")
}
