package extractor

// FontData describes a typeface detected in an image.
type FontData struct {
	Family string `json:"family"`
	Size   string `json:"size"`
	Weight string `json:"weight"`
	Style  string `json:"style,omitempty"`
}

// FontExtractor detects the fonts used by text in an image, in order of appearance.
type FontExtractor interface {
	ExtractFonts(image []byte) ([]FontData, error)
}

// SampleFontExtractor returns a fixed pair of fonts regardless of the image content.
type SampleFontExtractor struct{}

// ExtractFonts implements FontExtractor.
func (SampleFontExtractor) ExtractFonts(image []byte) ([]FontData, error) {
	return []FontData{
		{Family: "Arial", Size: "16px", Weight: "normal", Style: "normal"},
		{Family: "Helvetica", Size: "14px", Weight: "bold", Style: "normal"},
	}, nil
}
