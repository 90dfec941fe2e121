package formatter

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/image-extractor/pkg/artifact"
	"github.com/hellenic-development/image-extractor/pkg/element"
)

// TemplateName is the title embedded in every exported template.
const TemplateName = "Extracted Design Template"

var usageGuidance = []string{
	"Colors: use the hex values as CSS custom properties or design tokens.",
	"Palette: import the swatches into your design tool as a shared color style.",
	"Fonts: pair each family with the listed size and weight for headings and body text.",
	"Effects: apply the shadow settings to cards, buttons and raised surfaces.",
}

// Template is a self-contained export of every extracted element.
type Template struct {
	Name       string               `json:"name" yaml:"name"`
	ExportedAt string               `json:"exportedAt" yaml:"exportedAt"`
	Elements   []element.Element    `json:"elements" yaml:"elements"`
	Summary    map[element.Type]int `json:"summary" yaml:"summary"`
	Usage      []string             `json:"usage" yaml:"usage"`
}

// BuildTemplate wraps elements with a per-type count summary and usage guidance.
// The summary lists only types that occur.
func BuildTemplate(elements []element.Element, exportedAt time.Time) Template {
	summary := make(map[element.Type]int)
	for _, e := range elements {
		summary[e.Type]++
	}

	if elements == nil {
		elements = []element.Element{}
	}

	return Template{
		Name:       TemplateName,
		ExportedAt: artifact.FormatTime(exportedAt),
		Elements:   elements,
		Summary:    summary,
		Usage:      append([]string(nil), usageGuidance...),
	}
}

// JSON encodes the template as indented JSON.
func (t Template) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode template as JSON: %w", err)
	}
	return b, nil
}

// YAML encodes the template as YAML.
func (t Template) YAML() ([]byte, error) {
	b, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode template as YAML: %w", err)
	}
	return b, nil
}

// TemplateFileName returns the date-stamped export filename, e.g. "design-template-2026-10-18.json".
func TemplateFileName(at time.Time, ext string) string {
	return fmt.Sprintf("design-template-%s.%s", at.Format("2006-01-02"), ext)
}
