package services

import "strings"

const DefaultSummarySentences = 3

type Summarizer interface {
	Summarize(text string) string
}

type sentenceSummarizer struct {
	maxSentences int
}

// NewSentenceSummarizer returns a positional summarizer that keeps the first
// maxSentences period-delimited segments.
func NewSentenceSummarizer(maxSentences int) Summarizer {
	if maxSentences <= 0 {
		maxSentences = DefaultSummarySentences
	}
	return &sentenceSummarizer{maxSentences: maxSentences}
}

// Summarize implements Summarizer.
func (s *sentenceSummarizer) Summarize(text string) string {
	sentences := splitIntoSentences(text)
	if len(sentences) > s.maxSentences {
		sentences = sentences[:s.maxSentences]
	}
	return strings.Join(sentences, " ")
}

// splitIntoSentences splits on '.' only. Abbreviations, decimals and
// ellipses are not special-cased. Text without any period has no sentences.
func splitIntoSentences(text string) []string {
	if !strings.Contains(text, ".") {
		return nil
	}

	var result []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
