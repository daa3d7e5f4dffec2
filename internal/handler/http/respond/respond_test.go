package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		data     any
		wantBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]string{"summary": "One."}, wantBody: `{"summary":"One."}`},
		{name: "struct", code: http.StatusCreated, data: struct{ Count int }{Count: 3}, wantBody: `{"Count":3}`},
		{name: "nil body", code: http.StatusNoContent, data: nil, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.code, tt.data)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		JSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad request", decodeError(t, rec))
}

func TestAttachment(t *testing.T) {
	t.Run("ascii filename", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := []byte("First.\nSecond.")

		Attachment(rec, "text/plain; charset=utf-8", "summarized_text.txt", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename=summarized_text.txt`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "14", rec.Header().Get("Content-Length"))
		assert.Equal(t, body, rec.Body.Bytes())
	})

	t.Run("non-ascii filename", func(t *testing.T) {
		rec := httptest.NewRecorder()

		Attachment(rec, "text/plain", "résumé.txt", []byte("x"))

		assert.Contains(t, rec.Header().Get("Content-Disposition"), "filename*=utf-8''r%C3%A9sum%C3%A9.txt")
	})
}

func TestIsSafeMessage(t *testing.T) {
	assert.True(t, IsSafeMessage("sentences must be between 1 and 10"))
	assert.True(t, IsSafeMessage("Rate limit exceeded"))
	assert.True(t, IsSafeMessage("unsupported file format"))
	assert.False(t, IsSafeMessage("pdf: malformed xref table"))
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{name: "validation error", code: http.StatusBadRequest, err: errors.New("text is required"), wantMsg: "text is required"},
		{name: "rate limit", code: http.StatusTooManyRequests, err: errors.New("rate limit exceeded"), wantMsg: "rate limit exceeded"},
		{name: "unknown error hidden", code: http.StatusBadRequest, err: errors.New("zip: not a valid zip file"), wantMsg: "internal server error"},
		{name: "5xx always hidden", code: http.StatusInternalServerError, err: errors.New("value is invalid"), wantMsg: "internal server error"},
		{name: "wrapped safe error", code: http.StatusBadRequest, err: fmt.Errorf("parse: %w", errors.New("invalid sentences")), wantMsg: "parse: invalid sentences"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestSafeError_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusBadRequest, nil)

	assert.Empty(t, rec.Body.String())
}

func TestSafeError_AppError(t *testing.T) {
	internal := errors.New("pdf: malformed xref table")
	appErr := NewAppError(http.StatusUnprocessableEntity, "Could not extract text from the file.", internal)

	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError, fmt.Errorf("extract: %w", appErr))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "AppError code wins")
	assert.Equal(t, "Could not extract text from the file.", decodeError(t, rec))
}

func TestAppError(t *testing.T) {
	internal := errors.New("boom")

	withErr := NewAppError(http.StatusBadRequest, "user message", internal)
	assert.Equal(t, "boom", withErr.Error())
	assert.ErrorIs(t, withErr, internal)

	withoutErr := NewAppError(http.StatusBadRequest, "user message", nil)
	assert.Equal(t, "user message", withoutErr.Error())
	assert.Nil(t, withoutErr.Unwrap())
}
