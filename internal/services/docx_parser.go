package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

type docxParser struct{}

func NewDOCXParser() TextExtractor {
	return &docxParser{}
}

// ExtractText returns the body paragraphs joined by newlines. Empty
// paragraphs stay as empty lines.
func (p *docxParser) ExtractText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	fragments, err := bodyParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		texts = append(texts, frag.text)
	}

	return strings.Join(texts, "\n"), nil
}

// bodyParagraphs walks word/document.xml and collects the text of every
// w:p that is a direct child of w:body. Paragraphs nested in tables are
// not body paragraphs. Only runs owned by the paragraph itself, or by one
// of its hyperlinks, contribute text; drawings and text boxes do not.
func bodyParagraphs(content string) ([]fragment, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		fragments []fragment
		stack     []string
		current   *strings.Builder
		paraDepth int
		inText    bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}

			if current == nil && name == "p" && parent == "body" {
				current = &strings.Builder{}
				paraDepth = len(stack)
			} else if current != nil && ownRun(stack, paraDepth) {
				switch name {
				case "t":
					inText = true
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}

			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("failed to parse document.xml: unbalanced </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

			if t.Name.Local == "t" {
				inText = false
			}
			if current != nil && len(stack) == paraDepth {
				fragments = append(fragments, fragment{text: current.String(), status: paragraphStatus(current)})
				current = nil
			}

		case xml.CharData:
			if current != nil && inText {
				current.Write(t)
			}
		}
	}

	return fragments, nil
}

// ownRun reports whether the innermost open element is a w:r belonging to
// the paragraph at paraDepth, either directly or through a w:hyperlink.
func ownRun(stack []string, paraDepth int) bool {
	switch len(stack) - paraDepth {
	case 2:
		return stack[paraDepth+1] == "r"
	case 3:
		return stack[paraDepth+1] == "hyperlink" && stack[paraDepth+2] == "r"
	}
	return false
}

func paragraphStatus(b *strings.Builder) fragmentStatus {
	if b.Len() == 0 {
		return fragmentEmpty
	}
	return fragmentText
}
