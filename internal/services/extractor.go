package services

import (
	"fmt"
	"strings"

	"skinner/resume-feedback/internal/models"
)

const (
	msgPDFProcessing  = "could not process PDF"
	msgDOCXProcessing = "could not process DOCX"
	msgNoText         = "could not extract any text from the file"
)

// TextExtractor turns a whole in-memory document into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type fragmentStatus int

const (
	fragmentText fragmentStatus = iota
	fragmentEmpty
	fragmentFailed
)

// fragment is the outcome of extracting one page or paragraph.
type fragment struct {
	text   string
	status fragmentStatus
	err    error
}

func textFragment(text string) fragment {
	if text == "" {
		return fragment{status: fragmentEmpty}
	}
	return fragment{text: text, status: fragmentText}
}

type ExtractorService interface {
	Extract(doc *models.UploadedDocument) (string, error)
}

type extractorService struct {
	pdfParser  TextExtractor
	docxParser TextExtractor
}

func NewExtractorService(pdfParser, docxParser TextExtractor) ExtractorService {
	return &extractorService{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract dispatches on the document format and rejects documents without text.
func (e *extractorService) Extract(doc *models.UploadedDocument) (string, error) {
	var (
		parser  TextExtractor
		failMsg string
	)

	switch doc.Format {
	case models.FormatPDF:
		parser, failMsg = e.pdfParser, msgPDFProcessing
	case models.FormatDOCX:
		parser, failMsg = e.docxParser, msgDOCXProcessing
	default:
		return "", NewClientInputError(msgUnsupportedFormat, fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format))
	}

	text, err := parser.ExtractText(doc.Data)
	if err != nil {
		return "", NewUpstreamError(failMsg, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", NewClientInputError(msgNoText, ErrNoText)
	}

	return text, nil
}
