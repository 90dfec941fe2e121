// Package element models the design elements returned to callers and
// assembles them, in a fixed order, from extractor output.
package element

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the kind of a design element. The set is closed.
type Type string

const (
	Font    Type = "font"
	Color   Type = "color"
	Shape   Type = "shape"
	Effect  Type = "effect"
	Text    Type = "text"
	Palette Type = "palette"
)

// AllTypes lists every element type in declaration order.
func AllTypes() []Type {
	return []Type{Font, Color, Shape, Effect, Text, Palette}
}

// Valid reports whether t is one of the known element types.
func (t Type) Valid() bool {
	switch t {
	case Font, Color, Shape, Effect, Text, Palette:
		return true
	}
	return false
}

// Element is a single extracted design element.
type Element struct {
	Type        Type   `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Details     string `json:"details" yaml:"details"`
	Value       *Value `json:"value,omitempty" yaml:"value,omitempty"`
	DownloadURL string `json:"downloadUrl" yaml:"downloadUrl"`
}

// Swatch is one entry of a palette value.
type Swatch struct {
	Color string `json:"color" yaml:"color"`
	Name  string `json:"name" yaml:"name"`
}

// Value is the typed payload of an element. Exactly one field is set:
// Hex for color elements, Palette for palette elements.
//
// On the wire a Value is always a string: the hex itself, or the
// JSON-encoded swatch array for palettes.
type Value struct {
	Hex     string
	Palette []Swatch
}

// HexValue returns a color payload.
func HexValue(hex string) *Value {
	return &Value{Hex: hex}
}

// PaletteValue returns a palette payload.
func PaletteValue(swatches []Swatch) *Value {
	return &Value{Palette: swatches}
}

// String returns the wire form of the value.
func (v Value) String() string {
	if v.Palette == nil {
		return v.Hex
	}
	// []Swatch holds only strings, encoding cannot fail.
	b, _ := json.Marshal(v.Palette)
	return string(b)
}

// MarshalJSON encodes the value as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes either wire form. A string holding a JSON array is a palette.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("element value must be a string: %w", err)
	}

	*v = Value{}
	if strings.HasPrefix(strings.TrimSpace(s), "[") {
		var swatches []Swatch
		if err := json.Unmarshal([]byte(s), &swatches); err != nil {
			return fmt.Errorf("invalid palette value: %w", err)
		}
		v.Palette = swatches
		return nil
	}

	v.Hex = s
	return nil
}

// MarshalYAML encodes the value as its wire string.
func (v Value) MarshalYAML() (any, error) {
	return v.String(), nil
}
