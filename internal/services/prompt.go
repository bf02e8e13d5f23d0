package services

import (
	"fmt"
	"strings"
)

const (
	SignOffName         = "Skinner"
	jobTypeNotSpecified = "Not specified"
)

// FeedbackLanguages are the document languages the feedback must mirror.
var FeedbackLanguages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Dutch",
	"Russian",
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemPrompt is sent as the system-role message alongside the feedback prompt.
func (pb *PromptBuilder) SystemPrompt() string {
	return "You are an expert talent acquisition recruiter and a Human Resources career advisor."
}

// BuildFeedbackPrompt creates the résumé review prompt. A non-blank job
// type is interpolated exactly as received.
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, summary, jobType string) string {
	if strings.TrimSpace(jobType) == "" {
		jobType = jobTypeNotSpecified
	}

	var languageRules strings.Builder
	for _, lang := range FeedbackLanguages {
		fmt.Fprintf(&languageRules, "- If the CV is written in %s, give the feedback in %s.\n", lang, lang)
	}

	return fmt.Sprintf(`You are an expert Human Resources advisor who specializes in reviewing résumés.
Please carefully review the following CV and provide a balanced analysis that includes:
- The candidate's strengths and key skills.
- Areas where the CV could be improved.
- Suggestions and recommendations to optimize how the profile is presented.

- Use a friendly and constructive tone, giving detailed feedback while being direct and kind.
- If the CV is strong, emphasize the positive aspects and give suggestions to make it even better.
- If the CV is weak, point out the problem areas and suggest specific ways to improve them.
- Always write the feedback in the same language the CV is written in.
%s- Say goodbye in a friendly way and sign off as "%s".


Full CV:
%s

Summary (extracted automatically):
%s

Job type: %s

Feedback:
`,
		languageRules.String(), SignOffName, resumeText, summary, jobType)
}
