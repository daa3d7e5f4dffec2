package extractor

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// uploadURL is the base URL handed to readability; uploads have no origin and
// relative links resolve against it.
var uploadURL = &url.URL{Scheme: "file", Path: "/"}

// extractHTML returns the main article text of an HTML page using readability.
// Pages readability cannot make sense of fall back to the visible body text.
func extractHTML(_ context.Context, data []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(data), uploadURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}
	return bodyText(data)
}

// bodyText returns the text of the body with scripts and styles removed.
func bodyText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	var lines []string
	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" || (len(lines) > 0 && lines[len(lines)-1] != "") {
			lines = append(lines, line)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
