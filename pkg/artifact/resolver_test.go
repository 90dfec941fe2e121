package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hellenic-development/image-extractor/pkg/element"
)

var fixedTime = time.Date(2026, 10, 18, 9, 30, 0, 123456789, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestResolve(t *testing.T) {
	r := NewResolver(WithClock(fixedClock))

	tests := []struct {
		name         string
		typ          element.Type
		identifier   string
		wantFilename string
		wantDoc      any
	}{
		{
			name:         "color echoes identifier",
			typ:          element.Color,
			identifier:   "Primary Blue",
			wantFilename: "Primary Blue.json",
			wantDoc: ColorDocument{
				Name:        "Primary Blue",
				Hex:         "#2563eb",
				RGB:         "rgb(37, 99, 235)",
				HSL:         "hsl(221, 83%, 53%)",
				ExtractedAt: "2026-10-18T09:30:00.123Z",
			},
		},
		{
			name:         "palette carries reference swatches",
			typ:          element.Palette,
			identifier:   "extracted",
			wantFilename: "extracted-palette.json",
			wantDoc: PaletteDocument{
				Name: "extracted",
				Colors: []element.Swatch{
					{Color: "#2563eb", Name: "Primary Blue"},
					{Color: "#1e40af", Name: "Dark Blue"},
					{Color: "#60a5fa", Name: "Light Blue"},
					{Color: "#f3f4f6", Name: "Background Gray"},
				},
				ExtractedAt: "2026-10-18T09:30:00.123Z",
				Format:      "hex",
			},
		},
		{
			name:         "font family equals identifier",
			typ:          element.Font,
			identifier:   "Arial",
			wantFilename: "Arial.json",
			wantDoc: FontDocument{
				Name:        "Arial",
				Family:      "Arial",
				Size:        "16px",
				Weight:      "regular",
				ExtractedAt: "2026-10-18T09:30:00.123Z",
			},
		},
		{
			name:         "effect is a fixed drop shadow",
			typ:          element.Effect,
			identifier:   "drop-shadow",
			wantFilename: "drop-shadow.json",
			wantDoc: EffectDocument{
				Name: "drop-shadow",
				Type: "shadow",
				Properties: EffectProperties{
					Blur:   "8px",
					Offset: "2px 2px",
					Color:  "rgba(0, 0, 0, 0.25)",
				},
				ExtractedAt: "2026-10-18T09:30:00.123Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.typ, tt.identifier)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Filename != tt.wantFilename {
				t.Errorf("Resolve().Filename = %q, want %q", got.Filename, tt.wantFilename)
			}
			if diff := cmp.Diff(tt.wantDoc, got.Document); diff != "" {
				t.Errorf("Resolve().Document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	r := NewResolver()

	for _, typ := range []element.Type{"bogus-type", element.Shape, element.Text, ""} {
		t.Run(string(typ), func(t *testing.T) {
			got, err := r.Resolve(typ, "x")
			if !errors.Is(err, ErrUnsupportedType) {
				t.Errorf("Resolve(%q) error = %v, want ErrUnsupportedType", typ, err)
			}
			if got != nil {
				t.Errorf("Resolve(%q) = %+v, want nil", typ, got)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver(WithClock(fixedClock))

	for _, typ := range []element.Type{element.Color, element.Palette, element.Font, element.Effect} {
		t.Run(string(typ), func(t *testing.T) {
			first, err := r.Resolve(typ, "Same Name")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			second, err := r.Resolve(typ, "Same Name")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			a, _ := first.JSON()
			b, _ := second.JSON()
			if !bytes.Equal(a, b) {
				t.Errorf("documents differ:\n%s\n%s", a, b)
			}
		})
	}
}

func TestResolve_OnlyTimestampVariesOverTime(t *testing.T) {
	clock := fixedTime
	r := NewResolver(WithClock(func() time.Time { return clock }))

	first, _ := r.Resolve(element.Font, "Arial")
	clock = clock.Add(time.Hour)
	second, _ := r.Resolve(element.Font, "Arial")

	a, _ := first.JSON()
	b, _ := second.JSON()
	if bytes.Equal(a, b) {
		t.Fatal("documents should carry different timestamps")
	}

	strip := func(doc []byte) map[string]any {
		var m map[string]any
		if err := json.Unmarshal(doc, &m); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		delete(m, "extractedAt")
		return m
	}
	if diff := cmp.Diff(strip(a), strip(b)); diff != "" {
		t.Errorf("documents differ beyond the timestamp:\n%s", diff)
	}
}

func TestArtifactJSON_KeyOrder(t *testing.T) {
	a, err := NewResolver(WithClock(fixedClock)).Resolve(element.Font, "Arial")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	b, err := a.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	want := `{"name":"Arial","family":"Arial","size":"16px","weight":"regular","extractedAt":"2026-10-18T09:30:00.123Z"}`
	if got := strings.TrimSpace(string(b)); got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}
