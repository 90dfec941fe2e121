// Package artifact rebuilds the downloadable JSON document for a single
// design element from its type and identifier alone.
//
// Resolution is reconstructive: nothing from the original upload is stored,
// so two elements with the same type and name always resolve to the same
// canonical document (apart from its timestamp).
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hellenic-development/image-extractor/pkg/element"
	"github.com/hellenic-development/image-extractor/pkg/extractor"
)

// ErrUnsupportedType is returned when no artifact exists for the requested element type.
var ErrUnsupportedType = errors.New("unsupported artifact type")

// TimeFormat is the layout of every generated timestamp: ISO-8601 UTC with milliseconds.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Artifact is a standalone downloadable document.
type Artifact struct {
	Filename string // attachment filename hint
	Document any    // JSON-encodable body
}

// JSON encodes the document.
func (a *Artifact) JSON() ([]byte, error) {
	b, err := json.Marshal(a.Document)
	if err != nil {
		return nil, fmt.Errorf("encode artifact %q: %w", a.Filename, err)
	}
	return b, nil
}

// ColorDocument is the artifact served for a color element.
type ColorDocument struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	RGB         string `json:"rgb"`
	HSL         string `json:"hsl"`
	ExtractedAt string `json:"extractedAt"`
}

// PaletteDocument is the artifact served for a palette element.
type PaletteDocument struct {
	Name        string           `json:"name"`
	Colors      []element.Swatch `json:"colors"`
	ExtractedAt string           `json:"extractedAt"`
	Format      string           `json:"format"`
}

// FontDocument is the artifact served for a font element.
type FontDocument struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	Size        string `json:"size"`
	Weight      string `json:"weight"`
	ExtractedAt string `json:"extractedAt"`
}

// EffectDocument is the artifact served for an effect element.
type EffectDocument struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Properties  EffectProperties `json:"properties"`
	ExtractedAt string           `json:"extractedAt"`
}

// EffectProperties describes a shadow in CSS terms.
type EffectProperties struct {
	Blur   string `json:"blur"`
	Offset string `json:"offset"`
	Color  string `json:"color"`
}

// referenceSwatches is the canonical palette every palette artifact carries.
var referenceSwatches = []element.Swatch{
	{Color: "#2563eb", Name: "Primary Blue"},
	{Color: "#1e40af", Name: "Dark Blue"},
	{Color: "#60a5fa", Name: "Light Blue"},
	{Color: "#f3f4f6", Name: "Background Gray"},
}

// Resolver maps (type, identifier) to an Artifact. It holds no per-request state
// and is safe for concurrent use.
type Resolver struct {
	now func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the clock used for the extractedAt timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// NewResolver returns a Resolver using the wall clock unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the artifact for an element of type t named by identifier.
// Only color, palette, font and effect elements have artifacts; any other
// type yields ErrUnsupportedType.
func (r *Resolver) Resolve(t element.Type, identifier string) (*Artifact, error) {
	extractedAt := FormatTime(r.now())

	switch t {
	case element.Color:
		// The original color is not recoverable from its name; a fixed canonical color is served.
		return &Artifact{
			Filename: identifier + ".json",
			Document: ColorDocument{
				Name:        identifier,
				Hex:         extractor.RGBToHex(37, 99, 235),
				RGB:         extractor.RGBString(37, 99, 235),
				HSL:         extractor.RGBToHSL(37, 99, 235),
				ExtractedAt: extractedAt,
			},
		}, nil
	case element.Palette:
		colors := make([]element.Swatch, len(referenceSwatches))
		copy(colors, referenceSwatches)
		return &Artifact{
			Filename: identifier + "-palette.json",
			Document: PaletteDocument{
				Name:        identifier,
				Colors:      colors,
				ExtractedAt: extractedAt,
				Format:      "hex",
			},
		}, nil
	case element.Font:
		return &Artifact{
			Filename: identifier + ".json",
			Document: FontDocument{
				Name:        identifier,
				Family:      identifier,
				Size:        "16px",
				Weight:      "regular",
				ExtractedAt: extractedAt,
			},
		}, nil
	case element.Effect:
		return &Artifact{
			Filename: identifier + ".json",
			Document: EffectDocument{
				Name: identifier,
				Type: "shadow",
				Properties: EffectProperties{
					Blur:   "8px",
					Offset: "2px 2px",
					Color:  "rgba(0, 0, 0, 0.25)",
				},
				ExtractedAt: extractedAt,
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, string(t))
}
