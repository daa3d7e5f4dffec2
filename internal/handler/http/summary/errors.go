package summary

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"textsum/internal/domain/entity"
	"textsum/internal/handler/http/respond"
	"textsum/internal/observability/logging"
	sumUC "textsum/internal/usecase/summary"
)

// User-facing messages.
const (
	MsgEmptyInput       = "Please enter some text to summarize."
	MsgExtractionFailed = "Could not extract text from the file."
	MsgNoFile           = "Please choose a file to upload."
	MsgFileTooLarge     = "The file is too large."
	MsgBadUpload        = "The upload could not be read."
	MsgInternal         = "Something went wrong. Please try again."
)

// outcome describes how an error is shown to the user.
type outcome struct {
	code    int
	message string
	// warning marks non-fatal conditions shown as a warning banner.
	warning bool
	// internal errors are logged.
	internal bool
}

func classify(err error, accept string) outcome {
	var vErr *entity.ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, sumUC.ErrEmptyInput):
		return outcome{code: http.StatusUnprocessableEntity, message: MsgEmptyInput, warning: true}
	case errors.As(err, &vErr):
		return outcome{code: http.StatusBadRequest, message: fmt.Sprintf("Invalid %s: %s.", vErr.Field, vErr.Message)}
	case errors.Is(err, http.ErrMissingFile):
		return outcome{code: http.StatusBadRequest, message: MsgNoFile}
	case errors.Is(err, sumUC.ErrFileTooLarge), errors.As(err, &maxErr):
		return outcome{code: http.StatusRequestEntityTooLarge, message: MsgFileTooLarge}
	case errors.Is(err, sumUC.ErrUnsupportedFormat):
		return outcome{code: http.StatusUnsupportedMediaType, message: "Unsupported file type. Please upload one of: " + accept + "."}
	case errors.Is(err, sumUC.ErrExtractionFailed):
		return outcome{code: http.StatusUnprocessableEntity, message: MsgExtractionFailed}
	case errors.Is(err, errBadUpload):
		return outcome{code: http.StatusBadRequest, message: MsgBadUpload}
	default:
		return outcome{code: http.StatusInternalServerError, message: MsgInternal, internal: true}
	}
}

// fail reports err to the client as JSON or as the page with a banner. data
// carries whatever the page should keep showing (input text, slider position).
func fail(w http.ResponseWriter, r *http.Request, view *View, logger *slog.Logger, err error, data pageData) {
	out := classify(err, view.Config().Accept)

	if out.internal && logger != nil {
		logging.WithRequestID(r.Context(), logger).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", respond.SanitizeError(err)))
	}

	if wantsJSON(r) {
		key := "error"
		if out.warning {
			key = "warning"
		}
		respond.JSON(w, out.code, map[string]string{key: out.message})
		return
	}

	if out.warning {
		data.Warning = out.message
	} else {
		data.Error = out.message
	}
	view.render(w, out.code, data)
}
