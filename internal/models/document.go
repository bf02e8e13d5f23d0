package models

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// UploadedDocument is the raw upload held in memory until its text is extracted.
type UploadedDocument struct {
	Filename string
	Format   DocumentFormat
	Data     []byte
}

// FeedbackResult is the trimmed LLM answer for one résumé.
type FeedbackResult struct {
	Feedback string
	Summary  string
}
