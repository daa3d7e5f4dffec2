package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsText = "Dogs are loyal pets. Cats are independent pets. Dogs often help police work. Many families own dogs."

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Stdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, petsText, "-n", "2")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "Dogs are loyal pets.\nCats are independent pets.\n", stdout)
}

func TestRun_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.txt")
	require.NoError(t, os.WriteFile(path, []byte(petsText), 0o600))

	code, stdout, stderr := runCLI(t, "", "-n", "1", "-algorithm", "lead", "-output", "json", path)

	require.Equal(t, 0, code, stderr)
	var out SummaryOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, path, out.Name)
	assert.Equal(t, "lead", out.Algorithm)
	assert.Equal(t, 1, out.Requested)
	assert.Equal(t, 4, out.TotalSentences)
	assert.Equal(t, []string{"Dogs are loyal pets."}, out.Sentences)
}

func TestRun_EmptyInput(t *testing.T) {
	code, stdout, stderr := runCLI(t, "  \n\t")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: Please enter some text to summarize.")
}

func TestRun_ExtractionFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))

	code, _, stderr := runCLI(t, "", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: Could not extract text from the file.")
}

func TestRun_UnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.pptx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	code, _, stderr := runCLI(t, "", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unsupported file type")
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{name: "count out of range", args: []string{"-n", "11"}, code: 1, want: "Invalid sentences: must be between 1 and 10."},
		{name: "unknown algorithm", args: []string{"-algorithm", "textrank"}, code: 2, want: "unknown summarization algorithm"},
		{name: "bad output", args: []string{"-output", "xml"}, code: 2, want: "Invalid output format"},
		{name: "too many files", args: []string{"a.txt", "b.txt"}, code: 2, want: "Usage:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, petsText, tt.args...)

			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
