package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// jsonOnlyInstruction is appended to every system prompt that expects
// structured output. Models still wrap JSON in prose or code fences often
// enough that DecodeModelJSON does a salvage pass.
const jsonOnlyInstruction = "\nIMPORTANT: Return ONLY pure JSON."

// CompleteJSON runs a completion and decodes the response into out.
func CompleteJSON(ctx context.Context, p Provider, req CompletionRequest, out any) error {
	req.System += jsonOnlyInstruction

	resp, err := p.Complete(ctx, req)
	if err != nil {
		return err
	}

	if err := DecodeModelJSON(resp.Content, out); err != nil {
		return fmt.Errorf("decode model output: %w", err)
	}
	return nil
}

// DecodeModelJSON decodes JSON from raw model output. If the output is not
// valid JSON as-is, it retries on the outermost {...} or [...] slice, which
// recovers payloads wrapped in markdown fences or explanatory text.
func DecodeModelJSON(raw string, out any) error {
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return nil
	}

	if sliced, ok := sliceOutermost(raw, '{', '}'); ok {
		if err := json.Unmarshal([]byte(sliced), out); err == nil {
			return nil
		}
	}
	if sliced, ok := sliceOutermost(raw, '[', ']'); ok {
		if err := json.Unmarshal([]byte(sliced), out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no parsable JSON in model output: %.200s", raw)
}

// sliceOutermost returns the substring from the first opening byte to the
// last closing byte, inclusive.
func sliceOutermost(s string, opening, closing byte) (string, bool) {
	start := strings.IndexByte(s, opening)
	end := strings.LastIndexByte(s, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
