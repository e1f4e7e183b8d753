package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

func TestSummarizer_DisabledWithoutProvider(t *testing.T) {
	s := NewSummarizer(nil)

	if s.IsEnabled() {
		t.Error("Expected summarizer to be disabled with nil provider")
	}
	if s.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}

	summary, err := s.GenerateSummary(context.Background(), nil, "en")
	if err != nil {
		t.Fatalf("Expected no error from disabled summarizer, got %v", err)
	}
	if summary != "" {
		t.Errorf("Expected empty summary, got %q", summary)
	}
}

func TestSummarizer_GenerateSummary(t *testing.T) {
	stub := &stubProvider{content: `{"summary": "One claim supported, one contradicted."}`}
	s := NewSummarizer(stub)

	if !s.IsEnabled() {
		t.Fatal("Expected summarizer to be enabled")
	}

	verdicts := []model.ClaimVerdict{
		{ClaimText: "Water boils at 100C.", Verdict: model.VerdictTrue, Confidence: 0.95},
		{ClaimText: "The moon is made of cheese.", Verdict: model.VerdictFalse, Confidence: 0.99},
	}

	summary, err := s.GenerateSummary(context.Background(), verdicts, "en")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if summary != "One claim supported, one contradicted." {
		t.Errorf("Unexpected summary: %q", summary)
	}

	// The prompt carries one bullet per verdict
	if !strings.Contains(stub.lastUser, "Water boils at 100C.: TRUE (0.95)") {
		t.Errorf("Expected verdict bullet in prompt, got %q", stub.lastUser)
	}
	if !strings.Contains(stub.lastUser, "Language: en") {
		t.Errorf("Expected language in prompt, got %q", stub.lastUser)
	}
}

func TestSummarizer_UnparsableOutputIsError(t *testing.T) {
	stub := &stubProvider{content: "no json here"}
	s := NewSummarizer(stub)

	if _, err := s.GenerateSummary(context.Background(), nil, "en"); err == nil {
		t.Fatal("Expected error for unparsable summary output")
	}
}
