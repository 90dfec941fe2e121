package imageextractor

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hellenic-development/image-extractor/pkg/artifact"
	"github.com/hellenic-development/image-extractor/pkg/element"
	"github.com/hellenic-development/image-extractor/pkg/extractor"
	"github.com/hellenic-development/image-extractor/pkg/imager"
)

var tracer = otel.Tracer("image-extractor")

// ErrEmptyImage is returned by Run when there are no image bytes to process.
var ErrEmptyImage = errors.New("no image data provided")

// Options configures the extraction.
type Options struct {
	Colors extractor.ColorExtractor // nil = extractor.SampleColorExtractor
	Fonts  extractor.FontExtractor  // nil = extractor.SampleFontExtractor
	Logger Logger                   // nil = no logging
	Now    func() time.Time         // nil = time.Now
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result is the outcome of processing one image.
type Result struct {
	Elements []element.Element `json:"elements"`
	Metadata Metadata          `json:"metadata"`
}

// Metadata describes the processed upload.
type Metadata struct {
	ProcessedAt string `json:"processedAt"`
	FileSize    int    `json:"fileSize"`
	MimeType    string `json:"mimeType"`
	Format      string `json:"format,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes the extraction pipeline on one image and returns the assembled elements.
//
// A failing extractor never fails the run: its error is logged and it contributes
// no elements. Run only returns an error when there is nothing to process.
func Run(ctx context.Context, image []byte, mimeType string, opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Colors == nil {
		opts.Colors = extractor.SampleColorExtractor{}
	}
	if opts.Fonts == nil {
		opts.Fonts = extractor.SampleFontExtractor{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctx, span := tracer.Start(ctx, "process_image", trace.WithAttributes(
		attribute.Int("image.size", len(image)),
		attribute.String("image.mime_type", mimeType),
	))
	defer span.End()

	if len(image) == 0 {
		span.SetStatus(codes.Error, ErrEmptyImage.Error())
		return nil, ErrEmptyImage
	}

	meta := Metadata{
		FileSize: len(image),
		MimeType: mimeType,
	}

	info, err := imager.Probe(image)
	if err != nil {
		opts.logWarn("Could not read image header: %v", err)
	} else {
		meta.Format = info.Format
		meta.Width = info.Width
		meta.Height = info.Height
		opts.logInfo("Image: %s %dx%d", info.Format, info.Width, info.Height)
	}

	colors := extractColors(ctx, &opts, image)
	fonts := extractFonts(ctx, &opts, image)

	_, assembleSpan := tracer.Start(ctx, "assemble")
	elements := element.Assemble(colors, fonts)
	assembleSpan.SetAttributes(attribute.Int("elements.count", len(elements)))
	assembleSpan.End()

	opts.logInfo("Assembled %d element(s)", len(elements))

	meta.ProcessedAt = artifact.FormatTime(opts.Now())

	return &Result{
		Elements: elements,
		Metadata: meta,
	}, nil
}

func extractColors(ctx context.Context, opts *Options, image []byte) []extractor.ColorData {
	_, span := tracer.Start(ctx, "extract_colors")
	defer span.End()

	opts.logInfo("Extracting colors...")
	colors, err := extractor.Safely(func() ([]extractor.ColorData, error) {
		return opts.Colors.ExtractColors(image)
	})
	if err != nil {
		span.RecordError(err)
		opts.logError("Color extraction failed: %v", err)
		return nil
	}

	span.SetAttributes(attribute.Int("colors.count", len(colors)))
	opts.logInfo("Found %d color(s)", len(colors))
	return colors
}

func extractFonts(ctx context.Context, opts *Options, image []byte) []extractor.FontData {
	_, span := tracer.Start(ctx, "extract_fonts")
	defer span.End()

	opts.logInfo("Extracting fonts...")
	fonts, err := extractor.Safely(func() ([]extractor.FontData, error) {
		return opts.Fonts.ExtractFonts(image)
	})
	if err != nil {
		span.RecordError(err)
		opts.logError("Font extraction failed: %v", err)
		return nil
	}

	span.SetAttributes(attribute.Int("fonts.count", len(fonts)))
	opts.logInfo("Found %d font(s)", len(fonts))
	return fonts
}
