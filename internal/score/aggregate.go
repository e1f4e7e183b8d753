package score

import "github.com/HinataHamura/ai-reality-engine/internal/model"

// Verdict derivation and aggregation. Everything here is deterministic
// arithmetic over the NLI judgments; no external calls.

// Confidence floor for a SUPPORT/CONTRADICT verdict. A decisive NLI label
// is trusted at least this much even when the entailment score is low.
const decisiveConfidenceFloor = 0.8

// neutralConfidence is the fixed confidence of an UNVERIFIED verdict
const neutralConfidence = 0.10

// DeriveVerdict turns one claim's NLI judgment into its verdict.
//
//	truth = clamp(S - C, 0, 1) where S/C is the entailment score when the
//	label is SUPPORT/CONTRADICT, else 0.
func DeriveVerdict(claim model.Claim, j model.Judgment, evidence []model.EvidenceSnippet) model.ClaimVerdict {
	var s, c float64
	switch j.Label {
	case model.LabelSupport:
		s = j.Entailment
	case model.LabelContradict:
		c = j.Entailment
	}

	truth := s - c
	if truth < 0 {
		truth = 0
	}
	if truth > 1 {
		truth = 1
	}

	verdict := model.ClaimVerdict{
		ClaimID:   claim.ID,
		ClaimText: claim.Text,
		Label:     j.Label,
		Score:     truth,
		Rationale: j.Rationale,
		Evidence:  evidence,
	}

	switch j.Label {
	case model.LabelSupport:
		verdict.Verdict = model.VerdictTrue
		verdict.Confidence = max(decisiveConfidenceFloor, s)
	case model.LabelContradict:
		verdict.Verdict = model.VerdictFalse
		verdict.Confidence = max(decisiveConfidenceFloor, c)
	default:
		verdict.Verdict = model.VerdictUnverified
		verdict.Confidence = neutralConfidence
	}

	return verdict
}

// NeutralVerdict builds the forced verdict for a claim whose evidence or
// judgment stage failed. The request still returns a result; the failure is
// recorded separately as a stage error.
func NeutralVerdict(claim model.Claim, rationale string) model.ClaimVerdict {
	return model.ClaimVerdict{
		ClaimID:    claim.ID,
		ClaimText:  claim.Text,
		Label:      model.LabelNeutral,
		Score:      0,
		Confidence: neutralConfidence,
		Verdict:    model.VerdictUnverified,
		Rationale:  rationale,
	}
}

// Aggregate combines per-claim verdicts into the overall result.
//
// Label rules, in order:
//   - no claims                  -> UNVERIFIED, confidence 0
//   - any CONTRADICT             -> FALSE
//   - all SUPPORT                -> TRUE
//   - no evidence for any claim  -> UNVERIFIED
//   - SUPPORT/NEUTRAL mix        -> PARTIALLY_SUPPORTED
//   - all NEUTRAL                -> UNVERIFIED
//
// Confidence is the arithmetic mean of per-claim confidences; the truth
// score is the arithmetic mean of per-claim truth scores.
func Aggregate(verdicts []model.ClaimVerdict) model.OverallResult {
	if len(verdicts) == 0 {
		return model.OverallResult{
			Label:      model.OverallUnverified,
			TruthScore: 0,
			Confidence: 0,
		}
	}

	var (
		supports      int
		contradicts   int
		confidenceSum float64
		truthSum      float64
		anyEvidence   bool
	)

	for _, v := range verdicts {
		switch v.Label {
		case model.LabelSupport:
			supports++
		case model.LabelContradict:
			contradicts++
		}
		confidenceSum += v.Confidence
		truthSum += v.Score
		if len(v.Evidence) > 0 {
			anyEvidence = true
		}
	}

	n := float64(len(verdicts))
	result := model.OverallResult{
		TruthScore: truthSum / n,
		Confidence: confidenceSum / n,
	}

	switch {
	case contradicts > 0:
		result.Label = model.OverallFalse
	case supports == len(verdicts):
		result.Label = model.OverallTrue
	case !anyEvidence:
		result.Label = model.OverallUnverified
	case supports > 0:
		result.Label = model.OverallPartiallySupported
	default:
		result.Label = model.OverallUnverified
	}

	return result
}
