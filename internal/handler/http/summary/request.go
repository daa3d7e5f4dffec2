package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"textsum/internal/domain/entity"
)

// wantsJSON reports whether the client expects a JSON response.
func wantsJSON(r *http.Request) bool {
	if isJSONBody(r) {
		return true
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}

func isJSONBody(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// decodeJSON decodes the request body into v, rejecting trailing data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return &entity.ValidationError{Field: "body", Message: "must be a valid JSON object"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &entity.ValidationError{Field: "body", Message: "must contain a single JSON object"}
	}
	return nil
}

// parseSentences reads a sentence count form value. Empty means def.
func parseSentences(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &entity.ValidationError{Field: "sentences", Message: "must be a whole number"}
	}
	return n, nil
}

// parseSource reads a document source. Empty means manual.
func parseSource(raw string) (entity.Source, error) {
	if raw == "" {
		return entity.SourceManual, nil
	}
	src := entity.Source(raw)
	if !src.Valid() {
		return "", &entity.ValidationError{
			Field:   "source",
			Message: fmt.Sprintf("must be %q or %q", entity.SourceManual, entity.SourceFile),
		}
	}
	return src, nil
}

// errBadUpload marks a request body that could not be parsed as a form.
var errBadUpload = errors.New("malformed form body")

// maxFormMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files removed by the server after the request.
const maxFormMemory = 8 << 20

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// parseForm parses a urlencoded or multipart body so PostFormValue sees the
// fields of either.
func parseForm(r *http.Request) error {
	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	return formError(err)
}

func formError(err error) error {
	if err == nil {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return fmt.Errorf("%w: %v", errBadUpload, err)
}

// uploadedFile returns the "file" part of a multipart request and its base
// name. The caller closes the file.
func uploadedFile(r *http.Request) (multipart.File, string, error) {
	if !isMultipart(r) {
		return nil, "", fmt.Errorf("%w: %v", errBadUpload, http.ErrNotMultipart)
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, "", formError(err)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	if hdr.Filename == "" {
		_ = f.Close()
		return nil, "", http.ErrMissingFile
	}
	return f, hdr.Filename, nil
}

// normalizeNewlines converts CRLF and lone CR to LF. Browsers submit text
// areas with CRLF line breaks.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
