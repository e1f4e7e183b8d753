package model

// Claim represents a factual assertion extracted from user text
type Claim struct {
	ID       string    `json:"claim_id"`         // Stable identifier within one request (c1, c2, ...)
	Text     string    `json:"text"`             // The claim text itself
	Type     ClaimType `json:"claim_type"`       // Nature of the claim
	Tokens   int       `json:"tokens,omitempty"` // Approximate token count reported by the extractor
	Entities []string  `json:"extracted_entities,omitempty"`
	CharSpan [2]int    `json:"char_span"`        // [start, end) offsets into the source text
	Source   string    `json:"source,omitempty"` // Verbatim source text the claim was extracted from
}

// ClaimType categorizes the nature of the claim
type ClaimType string

const (
	ClaimTypeCategorical ClaimType = "categorical" // Plain factual statement (default)
	ClaimTypeNumerical   ClaimType = "numerical"   // Quantities, dates, measurements
	ClaimTypeCausal      ClaimType = "causal"      // X caused/led to Y
	ClaimTypeAttribution ClaimType = "attribution" // Claims about who did/said something
)
