package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_DownloadFilename(t *testing.T) {
	assert.Equal(t, "summarized_text.txt", SourceManual.DownloadFilename())
	assert.Equal(t, "summarized_file_text.txt", SourceFile.DownloadFilename())
	assert.Equal(t, "summarized_text.txt", Source("").DownloadFilename())
}

func TestSource_Valid(t *testing.T) {
	assert.True(t, SourceManual.Valid())
	assert.True(t, SourceFile.Valid())
	assert.False(t, Source("url").Valid())
}

func TestNewManualDocument(t *testing.T) {
	doc := NewManualDocument("  Hello.  ")

	assert.Equal(t, "input", doc.Name)
	assert.Equal(t, SourceManual, doc.Source)
	assert.Equal(t, "  Hello.  ", doc.Text, "text is kept verbatim")
	assert.False(t, doc.IsBlank())
}

func TestDocument_IsBlank(t *testing.T) {
	for _, text := range []string{"", " ", "\n\t\r\n"} {
		assert.True(t, Document{Text: text}.IsBlank(), "%q", text)
	}
	assert.False(t, Document{Text: "x"}.IsBlank())
}

func TestSummary_Text(t *testing.T) {
	s := Summary{Sentences: []string{"One.", "Two.", "Three."}}

	assert.Equal(t, "One.\nTwo.\nThree.", s.Text())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "", Summary{}.Text())
}

func TestValidateSentenceCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{name: "minimum", n: MinSentenceCount},
		{name: "default", n: DefaultSentenceCount},
		{name: "maximum", n: MaxSentenceCount},
		{name: "zero", n: 0, wantErr: true},
		{name: "above maximum", n: 11, wantErr: true},
		{name: "negative", n: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSentenceCount(tt.n, MinSentenceCount, MaxSentenceCount)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), "must be between 1 and 10")
		})
	}
}
