package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFeedbackPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildFeedbackPrompt("FULL RESUME TEXT", "SHORT SUMMARY", "Backend Engineer")

	assert.Contains(t, prompt, "FULL RESUME TEXT")
	assert.Contains(t, prompt, "Summary (extracted automatically):\nSHORT SUMMARY")
	assert.Contains(t, prompt, "Job type: Backend Engineer")
	assert.Contains(t, prompt, "strengths")
	assert.Contains(t, prompt, "could be improved")
	assert.Contains(t, prompt, "recommendations")
	assert.Contains(t, prompt, `sign off as "Skinner"`)
	assert.Contains(t, prompt, "same language the CV is written in")
	for _, lang := range FeedbackLanguages {
		assert.Contains(t, prompt, "written in "+lang+", give the feedback in "+lang)
	}
}

func TestBuildFeedbackPromptJobTypePlaceholder(t *testing.T) {
	pb := NewPromptBuilder()

	for _, jobType := range []string{"", "   "} {
		prompt := pb.BuildFeedbackPrompt("text", "", jobType)
		assert.Contains(t, prompt, "Job type: Not specified")
	}
}

func TestBuildFeedbackPromptKeepsJobTypeVerbatim(t *testing.T) {
	prompt := NewPromptBuilder().BuildFeedbackPrompt("text", "", "  Data Scientist ")

	assert.Contains(t, prompt, "Job type:   Data Scientist \n")
}

func TestSystemPrompt(t *testing.T) {
	assert.Contains(t, NewPromptBuilder().SystemPrompt(), "recruiter")
}
