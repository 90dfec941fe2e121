package httpapi

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	imageextractor "github.com/hellenic-development/image-extractor"
	"github.com/hellenic-development/image-extractor/pkg/artifact"
	"github.com/hellenic-development/image-extractor/pkg/element"
	"github.com/hellenic-development/image-extractor/pkg/imager"
)

// multipartOverhead leaves room for boundaries and part headers around the file itself.
const multipartOverhead = 1 << 20

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ProcessImage accepts a multipart upload in the "image" field and returns the extracted elements.
func (a *App) ProcessImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "Image exceeds the upload size limit")
			return
		}
		a.error(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	if header.Size > a.MaxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "Image exceeds the upload size limit")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if !imager.IsImageMIMEType(mimeType) {
		a.error(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, a.MaxUploadBytes+1))
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to read upload")
		a.error(w, http.StatusInternalServerError, "Failed to process image")
		return
	}
	if int64(len(data)) > a.MaxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "Image exceeds the upload size limit")
		return
	}
	if len(data) == 0 {
		a.error(w, http.StatusBadRequest, "No image file provided")
		return
	}

	result, err := imageextractor.Run(r.Context(), data, mimeType, a.pipelineOptions(r))
	if err != nil {
		a.Logger.Error().Err(err).Str("request_id", RequestIDFromContext(r.Context())).Msg("error processing image")
		a.error(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	a.json(w, http.StatusOK, result)
}

// DownloadArtifact serves the standalone JSON document for one element.
func (a *App) DownloadArtifact(w http.ResponseWriter, r *http.Request) {
	typ := element.Type(chi.URLParam(r, "type"))

	identifier, err := pathParam(r, "identifier")
	if err != nil {
		a.error(w, http.StatusBadRequest, "Invalid element identifier")
		return
	}

	doc, err := a.Resolver.Resolve(typ, identifier)
	if err != nil {
		if errors.Is(err, artifact.ErrUnsupportedType) {
			a.error(w, http.StatusNotFound, "Unsupported element type")
			return
		}
		a.Logger.Error().Err(err).Msg("failed to resolve artifact")
		a.error(w, http.StatusInternalServerError, "Failed to build download")
		return
	}

	body, err := doc.JSON()
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to encode artifact")
		a.error(w, http.StatusInternalServerError, "Failed to build download")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// pathParam returns a decoded route parameter. chi matches on the escaped path
// when one exists, leaving percent-escapes in the captured segment.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
