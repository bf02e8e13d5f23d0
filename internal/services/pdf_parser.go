package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfParser struct{}

func NewPDFParser() TextExtractor {
	return &pdfParser{}
}

// ExtractText reads pages in order and appends a newline after each page
// that produced text. Unreadable pages are skipped; a document that cannot
// be opened fails as a whole.
func (p *pdfParser) ExtractText(data []byte) (string, error) {
	r, err := openPDF(data)
	if err != nil {
		return "", err
	}

	totalPage, err := countPages(r)
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	failed := 0

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		frag := extractPage(r, pageIndex)
		switch frag.status {
		case fragmentText:
			textBuilder.WriteString(frag.text)
			textBuilder.WriteString("\n")
		case fragmentFailed:
			failed++
			log.Printf("⚠️  Skipping unreadable PDF page %d: %v", pageIndex, frag.err)
		}
	}

	if failed > 0 && failed == totalPage {
		log.Printf("⚠️  None of the %d PDF pages could be read", totalPage)
	}

	return textBuilder.String(), nil
}

func openPDF(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return r, nil
}

func countPages(r *pdf.Reader) (n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF page tree: %v", rec)
		}
	}()

	return r.NumPage(), nil
}

func extractPage(r *pdf.Reader, pageIndex int) (frag fragment) {
	defer func() {
		if rec := recover(); rec != nil {
			frag = fragment{status: fragmentFailed, err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return fragment{status: fragmentEmpty}
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return fragment{status: fragmentFailed, err: err}
	}

	return textFragment(text)
}
