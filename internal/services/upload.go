package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"skinner/resume-feedback/internal/models"
)

const (
	msgMissingFile       = "a file must be uploaded"
	msgUnsupportedFormat = "unsupported file format: only PDF and DOCX files are accepted"
	msgUploadRead        = "could not read the uploaded file"
)

type UploadReader interface {
	Read(file *multipart.FileHeader) (*models.UploadedDocument, error)
}

type uploadReader struct {
	maxFileSize int64
}

func NewUploadReader(maxFileSize int64) UploadReader {
	return &uploadReader{
		maxFileSize: maxFileSize,
	}
}

// ValidateFilename maps a filename to its document format by extension.
func ValidateFilename(filename string) (models.DocumentFormat, error) {
	if strings.TrimSpace(filename) == "" {
		return "", NewClientInputError(msgMissingFile, ErrMissingFile)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return models.FormatPDF, nil
	case ".docx":
		return models.FormatDOCX, nil
	default:
		return "", NewClientInputError(msgUnsupportedFormat, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
}

// Read validates the upload and loads its bytes into memory.
func (u *uploadReader) Read(file *multipart.FileHeader) (*models.UploadedDocument, error) {
	if file == nil {
		return nil, NewClientInputError(msgMissingFile, ErrMissingFile)
	}

	format, err := ValidateFilename(file.Filename)
	if err != nil {
		return nil, err
	}

	if u.maxFileSize > 0 && file.Size > u.maxFileSize {
		return nil, NewClientInputError(
			fmt.Sprintf("file too large. Max size: %d bytes", u.maxFileSize),
			ErrFileTooLarge,
		)
	}

	src, err := file.Open()
	if err != nil {
		return nil, NewUpstreamError(msgUploadRead, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, NewUpstreamError(msgUploadRead, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	return &models.UploadedDocument{
		Filename: file.Filename,
		Format:   format,
		Data:     data,
	}, nil
}
