package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/HinataHamura/ai-reality-engine/internal/llm"
	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// worldKnowledgeFallback replaces the evidence block when retrieval
// produced nothing, so the NLI call can still run.
const worldKnowledgeFallback = "No external evidence. Use general world knowledge, science, history, and " +
	"geographical facts to evaluate the claim."

// Verifier judges one claim against its evidence via a single LLM call
type Verifier struct {
	provider llm.Provider
}

// NewVerifier creates a new verifier
func NewVerifier(provider llm.Provider) *Verifier {
	return &Verifier{provider: provider}
}

// rawJudgment mirrors the structured JSON the model is instructed to return
type rawJudgment struct {
	Label           string         `json:"label"`
	EntailmentScore float64        `json:"entailment_score"`
	ExtractedFacts  map[string]any `json:"extracted_facts"`
	Explanation     string         `json:"explanation"`
}

// Judge classifies the claim against the evidence as SUPPORT, CONTRADICT or
// NEUTRAL. Unknown labels coerce to NEUTRAL; the entailment score is clamped
// to [0,1].
func (v *Verifier) Judge(ctx context.Context, claim model.Claim, evidence []model.EvidenceSnippet) (*model.Judgment, error) {
	req := llm.CompletionRequest{
		System: "You are a fact-checking NLI system. Return JSON only.",
		User: fmt.Sprintf(`Claim: "%s"

Evidence:
"""%s"""

Return:
{
 "label":"SUPPORT"|"CONTRADICT"|"NEUTRAL",
 "entailment_score":0.0,
 "extracted_facts":{},
 "explanation":"..."
}`, claim.Text, evidenceBlock(evidence)),
	}

	var raw rawJudgment
	if err := llm.CompleteJSON(ctx, v.provider, req, &raw); err != nil {
		return nil, fmt.Errorf("verify claim %s: %w", claim.ID, err)
	}

	return &model.Judgment{
		ClaimID:    claim.ID,
		Label:      model.NormalizeLabel(strings.ToUpper(strings.TrimSpace(raw.Label))),
		Entailment: clamp01(raw.EntailmentScore),
		Facts:      raw.ExtractedFacts,
		Rationale:  raw.Explanation,
	}, nil
}

// evidenceBlock renders numbered snippets for the prompt
func evidenceBlock(evidence []model.EvidenceSnippet) string {
	if len(evidence) == 0 {
		return worldKnowledgeFallback
	}

	parts := make([]string, 0, len(evidence))
	for i, e := range evidence {
		parts = append(parts, fmt.Sprintf("[%d] %s: %s", i+1, e.Title, e.Snippet))
	}
	return strings.Join(parts, "\n\n")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
