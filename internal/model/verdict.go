package model

// Label is the NLI classification of a claim against its evidence
type Label string

const (
	LabelSupport    Label = "SUPPORT"
	LabelContradict Label = "CONTRADICT"
	LabelNeutral    Label = "NEUTRAL"
)

// NormalizeLabel coerces unknown or malformed labels to NEUTRAL
func NormalizeLabel(raw string) Label {
	switch Label(raw) {
	case LabelSupport, LabelContradict, LabelNeutral:
		return Label(raw)
	default:
		return LabelNeutral
	}
}

// Judgment is the raw NLI output for one claim before verdict derivation
type Judgment struct {
	ClaimID    string         `json:"claim_id"`
	Label      Label          `json:"label"`
	Entailment float64        `json:"entailment_score"` // In [0,1]
	Facts      map[string]any `json:"extracted_facts,omitempty"`
	Rationale  string         `json:"explanation"`
}

// Verdict is the per-claim classification after verdict derivation
type Verdict string

const (
	VerdictTrue       Verdict = "TRUE"
	VerdictFalse      Verdict = "FALSE"
	VerdictUnverified Verdict = "UNVERIFIED"
)

// ClaimVerdict combines one claim's NLI judgment with its derived verdict
type ClaimVerdict struct {
	ClaimID    string            `json:"claim_id"`
	ClaimText  string            `json:"claim_text"`
	Label      Label             `json:"label"`
	Score      float64           `json:"score"`      // Truth score in [0,1]
	Confidence float64           `json:"confidence"` // In [0,1]
	Verdict    Verdict           `json:"verdict"`
	Rationale  string            `json:"rationale"`
	Evidence   []EvidenceSnippet `json:"evidence_used"`
}

// OverallLabel classifies the whole request
type OverallLabel string

const (
	OverallTrue               OverallLabel = "TRUE"
	OverallFalse              OverallLabel = "FALSE"
	OverallPartiallySupported OverallLabel = "PARTIALLY_SUPPORTED"
	OverallUnverified         OverallLabel = "UNVERIFIED"
)

// OverallResult is the deterministic aggregate over all per-claim verdicts.
// It is never mutated once computed.
type OverallResult struct {
	Label      OverallLabel `json:"label"`
	TruthScore float64      `json:"truth_score"` // Mean of per-claim truth scores
	Confidence float64      `json:"confidence"`  // Mean of per-claim confidences
}
