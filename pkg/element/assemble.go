package element

import (
	"fmt"
	"net/url"

	"github.com/hellenic-development/image-extractor/pkg/extractor"
)

// DownloadPrefix is the path under which element artifacts are served.
const DownloadPrefix = "/api/download"

// Fixed identifiers for elements whose artifact does not depend on their content.
const (
	PaletteIdentifier = "extracted"
	EffectIdentifier  = "drop-shadow"
)

const (
	paletteName       = "Color Palette"
	unnamedSwatchName = "Extracted Color"
	dropShadowName    = "Drop Shadow"
	dropShadowDetails = "Detected shadow effect"
)

// DownloadURL returns the artifact reference for an element of type t.
// The identifier is percent-encoded as a single path segment.
func DownloadURL(t Type, identifier string) string {
	return DownloadPrefix + "/" + string(t) + "/" + url.PathEscape(identifier)
}

// Assemble turns extractor output into the ordered element list:
// every color, then the palette (only when there are colors), then every font,
// then the drop shadow effect.
func Assemble(colors []extractor.ColorData, fonts []extractor.FontData) []Element {
	elements := make([]Element, 0, len(colors)+len(fonts)+2)

	for i, c := range colors {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Color %d", i+1)
		}
		elements = append(elements, Element{
			Type:        Color,
			Name:        name,
			Details:     c.Hex,
			Value:       HexValue(c.Hex),
			DownloadURL: DownloadURL(Color, name),
		})
	}

	if len(colors) > 0 {
		elements = append(elements, paletteElement(colors))
	}

	for _, f := range fonts {
		elements = append(elements, Element{
			Type:        Font,
			Name:        f.Family,
			Details:     fmt.Sprintf("%s, %s", f.Size, f.Weight),
			DownloadURL: DownloadURL(Font, f.Family),
		})
	}

	elements = append(elements, Element{
		Type:        Effect,
		Name:        dropShadowName,
		Details:     dropShadowDetails,
		DownloadURL: DownloadURL(Effect, EffectIdentifier),
	})

	return elements
}

func paletteElement(colors []extractor.ColorData) Element {
	swatches := make([]Swatch, 0, len(colors))
	for _, c := range colors {
		name := c.Name
		if name == "" {
			name = unnamedSwatchName
		}
		swatches = append(swatches, Swatch{Color: c.Hex, Name: name})
	}

	return Element{
		Type:        Palette,
		Name:        paletteName,
		Details:     fmt.Sprintf("%d colors extracted", len(colors)),
		Value:       PaletteValue(swatches),
		DownloadURL: DownloadURL(Palette, PaletteIdentifier),
	}
}
