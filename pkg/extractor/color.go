package extractor

import (
	"fmt"
	"math"
	"strings"
)

// UnknownColorName is returned by ColorName for any hex value outside the known swatch table.
const UnknownColorName = "Unknown Color"

// ColorData describes a single color extracted from an image.
// Hex is canonical (#rrggbb, lowercase); RGB and HSL are human-readable strings derived from it.
type ColorData struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	HSL  string `json:"hsl"`
	Name string `json:"name,omitempty"`
}

// ColorExtractor produces the dominant colors of an image, in significance order.
// Implementations may return an error; the pipeline treats any failure as "no colors".
type ColorExtractor interface {
	ExtractColors(image []byte) ([]ColorData, error)
}

// colorNames maps lowercase hex values to well-known swatch names. Populated once, read-only afterwards.
var colorNames = map[string]string{
	"#2563eb": "Primary Blue",
	"#1e40af": "Dark Blue",
	"#60a5fa": "Light Blue",
	"#f3f4f6": "Light Gray",
	"#ffffff": "White",
	"#000000": "Black",
	"#ff0000": "Red",
	"#00ff00": "Green",
	"#0000ff": "Blue",
	"#ffff00": "Yellow",
	"#ff00ff": "Magenta",
	"#00ffff": "Cyan",
}

// SampleColorExtractor returns a fixed reference palette regardless of the image content.
// It stands in for a pixel-clustering extractor until one is plugged in.
type SampleColorExtractor struct{}

type sampleColor struct {
	r, g, b uint8
	name    string
}

var sampleColors = []sampleColor{
	{37, 99, 235, "Primary Blue"},
	{30, 64, 175, "Dark Blue"},
	{96, 165, 250, "Light Blue"},
	{243, 244, 246, "Background Gray"},
}

// ExtractColors implements ColorExtractor.
func (SampleColorExtractor) ExtractColors(image []byte) ([]ColorData, error) {
	colors := make([]ColorData, 0, len(sampleColors))
	for _, c := range sampleColors {
		colors = append(colors, NewColorData(c.r, c.g, c.b, c.name))
	}
	return colors, nil
}

// NewColorData builds a ColorData from 8-bit channels, deriving every textual representation.
func NewColorData(r, g, b uint8, name string) ColorData {
	return ColorData{
		Hex:  RGBToHex(r, g, b),
		RGB:  RGBString(r, g, b),
		HSL:  RGBToHSL(r, g, b),
		Name: name,
	}
}

// RGBToHex converts 8-bit RGB channels to a lowercase "#rrggbb" string.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBString formats 8-bit RGB channels as a CSS rgb() expression.
func RGBString(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// RGBToHSL converts 8-bit RGB channels to a CSS hsl() expression.
// Hue is in degrees, saturation and lightness in percent, each rounded to the nearest integer.
// Achromatic input (all channels equal) yields hue 0 and saturation 0.
func RGBToHSL(r, g, b uint8) string {
	h, s, l := hsl(float64(r)/255, float64(g)/255, float64(b)/255)
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)))
}

// hsl returns hue, saturation and lightness, all in [0,1], for channels in [0,1].
func hsl(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return h / 6, s, l
}

// ColorName looks up the swatch name for a hex value, ignoring case.
// Unmatched values return UnknownColorName.
func ColorName(hex string) string {
	if name, ok := colorNames[strings.ToLower(hex)]; ok {
		return name
	}
	return UnknownColorName
}
