// Package formatter serializes extracted elements into exportable documents:
// the design template (JSON or YAML) and a markdown report with CSS variables.
package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/image-extractor/pkg/element"
)

// ToMarkdown transforms extracted elements into a markdown document.
// Colors, fonts and effects become CSS custom properties; the palette is rendered as a table.
func ToMarkdown(elements []element.Element, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Elements - %s\n\n", title))
	sb.WriteString("This document lists the design elements extracted from the uploaded image.\n\n")

	var colors, fonts, effects []element.Element
	var palette *element.Element
	for i, e := range elements {
		switch e.Type {
		case element.Color:
			colors = append(colors, e)
		case element.Font:
			fonts = append(fonts, e)
		case element.Effect:
			effects = append(effects, e)
		case element.Palette:
			palette = &elements[i]
		}
	}

	if len(colors) > 0 {
		sb.WriteString("## Colors\n\n")
		sb.WriteString("```css\n")
		for i, c := range colors {
			sb.WriteString(fmt.Sprintf("--color-%s: %s;\n", cssName(c.Name, "color", i), c.Details))
		}
		sb.WriteString("```\n\n")
	}

	if palette != nil && palette.Value != nil && len(palette.Value.Palette) > 0 {
		sb.WriteString("## Palette\n\n")
		sb.WriteString("| Swatch | Hex |\n")
		sb.WriteString("|--------|-----|\n")
		for _, s := range palette.Value.Palette {
			sb.WriteString(fmt.Sprintf("| %s | `%s` |\n", s.Name, s.Color))
		}
		sb.WriteString("\n")
	}

	if len(fonts) > 0 {
		sb.WriteString("## Typography\n\n")
		sb.WriteString("```css\n")
		for i, f := range fonts {
			sb.WriteString(fmt.Sprintf("--font-%s: '%s', system-ui, -apple-system, sans-serif; /* %s */\n",
				cssName(f.Name, "font", i), f.Name, f.Details))
		}
		sb.WriteString("```\n\n")
	}

	if len(effects) > 0 {
		sb.WriteString("## Effects\n\n")
		for _, e := range effects {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", e.Name, e.Details))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Downloads\n\n")
	sb.WriteString("| Element | Type | Artifact |\n")
	sb.WriteString("|---------|------|----------|\n")
	for _, e := range elements {
		sb.WriteString(fmt.Sprintf("| %s | %s | `%s` |\n", e.Name, e.Type, e.DownloadURL))
	}
	sb.WriteString("\n")

	return sb.String()
}

// cssName derives a CSS variable suffix from an element name, falling back to a positional name.
func cssName(name, kind string, index int) string {
	if s := toKebabCase(name); s != "" {
		return s
	}
	return fmt.Sprintf("%s-%d", kind, index+1)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// Special characters are removed, and spaces/underscores are replaced with hyphens.
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
