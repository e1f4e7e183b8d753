package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/HinataHamura/ai-reality-engine/internal/llm"
	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// ClaimExtractor extracts factual claims from free text via one LLM call.
// A single attempt is made; unparsable output is an extraction error.
type ClaimExtractor struct {
	provider llm.Provider
}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor(provider llm.Provider) *ClaimExtractor {
	return &ClaimExtractor{provider: provider}
}

// rawClaim mirrors the structured JSON the model is instructed to return
type rawClaim struct {
	ClaimID   string   `json:"claim_id"`
	Text      string   `json:"text"`
	ClaimType string   `json:"claim_type"`
	Tokens    int      `json:"tokens"`
	Entities  []string `json:"extracted_entities"`
	CharSpan  []int    `json:"char_span"`
}

type claimsPayload struct {
	Claims []rawClaim `json:"claims"`
}

// Extract returns the ordered claims found in text, possibly none
func (e *ClaimExtractor) Extract(ctx context.Context, text string) ([]model.Claim, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty input text")
	}

	req := llm.CompletionRequest{
		System: "Extract factual statements. Return JSON only.",
		User: fmt.Sprintf(`Text:
"""%s"""

Return:
{
 "claims":[
   {
     "claim_id":"c1",
     "text":"..",
     "claim_type":"categorical",
     "tokens":5,
     "extracted_entities":["A","B"],
     "char_span":[0,20]
   }
 ]
}`, text),
	}

	var payload claimsPayload
	if err := llm.CompleteJSON(ctx, e.provider, req, &payload); err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}

	claims := make([]model.Claim, 0, len(payload.Claims))
	for i, rc := range payload.Claims {
		if strings.TrimSpace(rc.Text) == "" {
			continue
		}
		claims = append(claims, normalizeClaim(rc, i, text))
	}
	return claims, nil
}

// normalizeClaim fills defaults for fields the model omitted or mangled
func normalizeClaim(rc rawClaim, index int, source string) model.Claim {
	c := model.Claim{
		ID:       rc.ClaimID,
		Text:     strings.TrimSpace(rc.Text),
		Type:     model.ClaimType(rc.ClaimType),
		Tokens:   rc.Tokens,
		Entities: rc.Entities,
		Source:   source,
	}

	if c.ID == "" {
		c.ID = fmt.Sprintf("c%d", index+1)
	}
	if c.Type == "" {
		c.Type = model.ClaimTypeCategorical
	}
	if c.Tokens <= 0 {
		c.Tokens = len(strings.Fields(c.Text))
	}
	if len(rc.CharSpan) == 2 && rc.CharSpan[0] >= 0 && rc.CharSpan[1] >= rc.CharSpan[0] {
		c.CharSpan = [2]int{rc.CharSpan[0], rc.CharSpan[1]}
	} else if idx := strings.Index(source, c.Text); idx >= 0 {
		c.CharSpan = [2]int{idx, idx + len(c.Text)}
	}

	return c
}
