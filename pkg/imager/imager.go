// Package imager inspects uploaded image payloads without decoding their pixels.
package imager

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned when there are no bytes to inspect.
var ErrEmpty = errors.New("empty image payload")

// Info describes an image header.
type Info struct {
	Format string // "png", "jpeg", "gif", "webp", "bmp" or "tiff"
	Width  int
	Height int
}

// Probe reads the image header and reports its format and dimensions.
// Only the header is decoded, so it is cheap even for large uploads.
func Probe(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, ErrEmpty
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image header: %w", err)
	}

	return Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// DetectMIMEType sniffs the content type of data, as an HTTP server would.
func DetectMIMEType(data []byte) string {
	return http.DetectContentType(data)
}

// IsImageMIMEType reports whether mimeType names an image media type.
func IsImageMIMEType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}
