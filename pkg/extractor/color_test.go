package extractor

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{name: "primary blue", r: 37, g: 99, b: 235, want: "#2563eb"},
		{name: "black", r: 0, g: 0, b: 0, want: "#000000"},
		{name: "white", r: 255, g: 255, b: 255, want: "#ffffff"},
		{name: "leading zeros kept", r: 1, g: 2, b: 3, want: "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHex(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{name: "black", r: 0, g: 0, b: 0, want: "hsl(0, 0%, 0%)"},
		{name: "white", r: 255, g: 255, b: 255, want: "hsl(0, 0%, 100%)"},
		{name: "mid gray is achromatic", r: 128, g: 128, b: 128, want: "hsl(0, 0%, 50%)"},
		{name: "pure red", r: 255, g: 0, b: 0, want: "hsl(0, 100%, 50%)"},
		{name: "pure green", r: 0, g: 255, b: 0, want: "hsl(120, 100%, 50%)"},
		{name: "pure blue", r: 0, g: 0, b: 255, want: "hsl(240, 100%, 50%)"},
		{name: "red max with blue above green wraps", r: 255, g: 0, b: 128, want: "hsl(330, 100%, 50%)"},
		{name: "primary blue", r: 37, g: 99, b: 235, want: "hsl(221, 83%, 53%)"},
		{name: "background gray", r: 243, g: 244, b: 246, want: "hsl(220, 14%, 96%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSL(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHSL(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// referenceHSL is the textbook formula written independently of hsl().
func referenceHSL(r, g, b uint8) string {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2
	if max == min {
		return fmt.Sprintf("hsl(0, 0%%, %d%%)", int(math.Round(l*100)))
	}
	d := max - min
	s := d / (max + min)
	if l > 0.5 {
		s = d / (2 - max - min)
	}
	var h float64
	switch {
	case max == rf && gf >= bf:
		h = (gf - bf) / d
	case max == rf:
		h = (gf-bf)/d + 6
	case max == gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h/6*360)), int(math.Round(s*100)), int(math.Round(l*100)))
}

func TestRGBToHSL_MatchesReferenceFormula(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				got := RGBToHSL(uint8(r), uint8(g), uint8(b))
				want := referenceHSL(uint8(r), uint8(g), uint8(b))
				if got != want {
					t.Fatalf("RGBToHSL(%d, %d, %d) = %q, want %q", r, g, b, got, want)
				}
			}
		}
	}
}

func TestColorName(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{hex: "#2563eb", want: "Primary Blue"},
		{hex: "#2563EB", want: "Primary Blue"},
		{hex: "#FFFFFF", want: "White"},
		{hex: "#123456", want: UnknownColorName},
		{hex: "", want: UnknownColorName},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := ColorName(tt.hex); got != tt.want {
				t.Errorf("ColorName(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestSampleColorExtractor(t *testing.T) {
	colors, err := SampleColorExtractor{}.ExtractColors(nil)
	if err != nil {
		t.Fatalf("ExtractColors() error = %v", err)
	}
	if len(colors) != 4 {
		t.Fatalf("ExtractColors() returned %d colors, want 4", len(colors))
	}

	first := colors[0]
	if first.Hex != "#2563eb" || first.RGB != "rgb(37, 99, 235)" || first.Name != "Primary Blue" {
		t.Errorf("first color = %+v", first)
	}

	for _, c := range colors {
		if c.Hex != strings.ToLower(c.Hex) || len(c.Hex) != 7 {
			t.Errorf("color %q is not canonical #rrggbb", c.Hex)
		}
	}
}

func TestSampleFontExtractor(t *testing.T) {
	fonts, err := SampleFontExtractor{}.ExtractFonts([]byte("not an image"))
	if err != nil {
		t.Fatalf("ExtractFonts() error = %v", err)
	}
	if len(fonts) != 2 || fonts[0].Family != "Arial" || fonts[1].Weight != "bold" {
		t.Errorf("ExtractFonts() = %+v", fonts)
	}
}

func TestSafely(t *testing.T) {
	t.Run("passes results through", func(t *testing.T) {
		got, err := Safely(func() ([]int, error) { return []int{1, 2}, nil })
		if err != nil || len(got) != 2 {
			t.Errorf("Safely() = %v, %v", got, err)
		}
	})

	t.Run("passes errors through", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Safely(func() ([]int, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Errorf("Safely() error = %v, want %v", err, boom)
		}
	})

	t.Run("recovers panics", func(t *testing.T) {
		got, err := Safely(func() ([]ColorData, error) { panic("decoder exploded") })
		if err == nil {
			t.Fatal("Safely() error = nil, want error")
		}
		if got != nil {
			t.Errorf("Safely() = %v, want nil", got)
		}
		if !strings.Contains(err.Error(), "decoder exploded") {
			t.Errorf("Safely() error = %q, want panic value in message", err)
		}
	})
}
