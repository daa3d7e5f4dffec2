package respond

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name  string
		input error
		want  string
	}{
		{
			name:  "multipart temp file",
			input: errors.New("open /tmp/multipart-123456: no such file or directory"),
			want:  "open <tmp>: no such file or directory",
		},
		{
			name:  "macOS temp dir",
			input: errors.New("read /var/folders/xy/abc/T/upload.pdf: EOF"),
			want:  "read <tmp>: EOF",
		},
		{
			name:  "home directory",
			input: errors.New("open /home/alice/docs/report.docx: permission denied"),
			want:  "open /<home>/docs/report.docx: permission denied",
		},
		{
			name:  "no sensitive info",
			input: errors.New("could not extract text from the file"),
			want:  "could not extract text from the file",
		},
		{
			name:  "nil error",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(tt.input))
		})
	}
}

func TestSanitizeError_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxLoggedErrorBytes)

	got := SanitizeError(errors.New(long))

	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.LessOrEqual(t, len(got), maxLoggedErrorBytes+len("...(truncated)"))
	assert.True(t, strings.HasPrefix(got, "éé"))
	assert.NotContains(t, got, "�")
}
