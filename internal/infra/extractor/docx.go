package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// wordNamespace is the WordprocessingML main namespace.
	wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	documentPart = "word/document.xml"

	// maxDocumentXML bounds the decompressed main document part.
	maxDocumentXML = 64 << 20
)

var errNoDocumentPart = errors.New("word/document.xml not found")

// extractDocx returns the text of every top-level body paragraph, in order,
// joined with newlines. Empty paragraphs are kept as empty lines. Tables,
// headers, footers and content controls are not part of the result.
func extractDocx(_ context.Context, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", errNoDocumentPart
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := bodyParagraphs(io.LimitReader(rc, maxDocumentXML))
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs streams document.xml and collects the text of each w:p that is
// a direct child of w:body. Only runs directly inside the paragraph, or inside a
// hyperlink of the paragraph, contribute; their w:t, w:tab and w:br children
// become text, tab and newline.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		stack      []xml.Name
		paragraphs []string
		buf        strings.Builder
		inPara     bool
		runDepth   int
		textDepth  int
	)

	isWord := func(depth int, local string) bool {
		n := stack[depth-1]
		return n.Space == wordNamespace && n.Local == local
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name)
			depth := len(stack)

			switch {
			case depth == 3 && isWord(1, "document") && isWord(2, "body") && isWord(3, "p"):
				inPara = true
				buf.Reset()
			case inPara && runDepth == 0 && isWord(depth, "r") &&
				(depth == 4 || (depth == 5 && isWord(4, "hyperlink"))):
				runDepth = depth
			case runDepth > 0 && depth == runDepth+1 && t.Name.Space == wordNamespace:
				switch t.Name.Local {
				case "t":
					textDepth = depth
				case "tab", "ptab":
					buf.WriteByte('\t')
				case "br":
					if breakType(t) == "" || breakType(t) == "textWrapping" {
						buf.WriteByte('\n')
					}
				case "cr":
					buf.WriteByte('\n')
				case "noBreakHyphen":
					buf.WriteByte('-')
				}
			}

		case xml.CharData:
			if textDepth > 0 && len(stack) == textDepth {
				buf.Write(t)
			}

		case xml.EndElement:
			depth := len(stack)
			switch {
			case depth == textDepth:
				textDepth = 0
			case depth == runDepth:
				runDepth = 0
			case depth == 3 && inPara:
				paragraphs = append(paragraphs, buf.String())
				inPara = false
			}
			stack = stack[:depth-1]
		}
	}
	return paragraphs, nil
}

// breakType returns the w:type attribute of a w:br element.
func breakType(el xml.StartElement) string {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value
		}
	}
	return ""
}
