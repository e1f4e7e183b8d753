package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// Summarizer turns per-claim verdicts into a short overall summary.
// Summary generation never affects scoring; failures are non-fatal.
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer backed by the given provider.
// A nil provider disables summarization.
func NewSummarizer(provider Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// ProviderName returns the backing provider's name, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

type summaryPayload struct {
	Summary string `json:"summary"`
}

// GenerateSummary asks the LLM for a prose summary of the verdicts
func (s *Summarizer) GenerateSummary(ctx context.Context, verdicts []model.ClaimVerdict, language string) (string, error) {
	if s.provider == nil {
		return "", nil
	}
	if language == "" {
		language = "en"
	}

	var bullets strings.Builder
	for _, v := range verdicts {
		fmt.Fprintf(&bullets, "- %s: %s (%.2f)\n", v.ClaimText, v.Verdict, v.Confidence)
	}

	req := CompletionRequest{
		System: "Summarize fact-checking results. JSON only.",
		User: fmt.Sprintf(`Language: %s

Verdicts:
%s
Return: {"summary":"..."}`, language, bullets.String()),
	}

	var payload summaryPayload
	if err := CompleteJSON(ctx, s.provider, req, &payload); err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return payload.Summary, nil
}
