package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"skinner/resume-feedback/internal/models"
)

const msgAnalyzeFailed = "error analyzing resume"

type AnalyzerService interface {
	Analyze(ctx context.Context, doc *models.UploadedDocument, jobType string) (*models.FeedbackResult, error)
}

type analyzerService struct {
	extractor     ExtractorService
	summarizer    Summarizer
	llm           LLMService
	promptBuilder *PromptBuilder
	llmTimeout    time.Duration
}

func NewAnalyzerService(
	extractor ExtractorService,
	summarizer Summarizer,
	llm LLMService,
	llmTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		summarizer:    summarizer,
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		llmTimeout:    llmTimeout,
	}
}

// Analyze runs extraction, summarization and feedback generation once.
// Failures are returned as *AppError and nothing is retried.
func (a *analyzerService) Analyze(ctx context.Context, doc *models.UploadedDocument, jobType string) (*models.FeedbackResult, error) {
	reqID := uuid.New().String()

	log.Printf("📄 [%s] Extracting text from %s (%s, %d bytes)", reqID, doc.Filename, doc.Format, len(doc.Data))
	text, err := a.extractor.Extract(doc)
	if err != nil {
		log.Printf("❌ [%s] Extraction failed: %v", reqID, err)
		return nil, err
	}

	summary := a.summarizer.Summarize(text)
	prompt := a.promptBuilder.BuildFeedbackPrompt(text, summary, jobType)
	log.Printf("📝 [%s] Prompt length: %d characters", reqID, len(prompt))

	if a.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.llmTimeout)
		defer cancel()
	}

	log.Printf("🤖 [%s] Requesting feedback from LLM...", reqID)
	start := time.Now()
	response, err := a.llm.Complete(ctx, a.promptBuilder.SystemPrompt(), prompt)
	if err != nil {
		log.Printf("❌ [%s] LLM call failed after %s: %v", reqID, time.Since(start), err)
		return nil, NewUpstreamError(fmt.Sprintf("%s: %v", msgAnalyzeFailed, err), err)
	}

	log.Printf("✅ [%s] Feedback received: %d characters in %s", reqID, len(response), time.Since(start))

	return &models.FeedbackResult{
		Feedback: strings.TrimSpace(response),
		Summary:  summary,
	}, nil
}
