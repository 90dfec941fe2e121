// Package extractor defines the color and font extraction contracts and the
// numeric color conversions shared by every implementation.
//
// Extractors accept raw image bytes and return an ordered slice of records.
// The bundled Sample extractors return fixed data; a pixel-based or OCR-based
// extractor only needs to satisfy ColorExtractor or FontExtractor to replace them.
package extractor
