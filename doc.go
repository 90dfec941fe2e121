// Package imageextractor turns a single uploaded raster image into an ordered
// list of design elements (colors, a palette, fonts and effects), each of which
// can be downloaded again later as a standalone JSON artifact.
//
// The HTTP service and CLI live in internal/httpapi and cmd/image-extractor;
// this root package exposes the same pipeline as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named imageextractor:
//
//	import "github.com/hellenic-development/image-extractor" // package imageextractor
//
// # Quick start
//
//	data, _ := os.ReadFile("logo.png")
//	result, err := imageextractor.Run(ctx, data, "image/png", imageextractor.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range result.Elements {
//	    fmt.Println(e.Type, e.Name, e.DownloadURL)
//	}
//
// # Element order
//
// Elements always come out as: every color, the palette (only when at least
// one color was found), every font, then a single drop shadow effect.
//
// # Extractors
//
// [Options.Colors] and [Options.Fonts] accept any implementation of
// extractor.ColorExtractor and extractor.FontExtractor. The defaults return
// fixed sample data. An extractor that errors or panics is logged and simply
// contributes no elements.
//
// # Artifacts
//
// Every element carries a download URL built only from its type and name.
// artifact.Resolver rebuilds the document for such a URL without any stored
// state, which also means same-named elements from different uploads resolve
// to the same document.
package imageextractor
