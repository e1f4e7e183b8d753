package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDecodeModelJSON_PureJSON(t *testing.T) {
	var out map[string]any
	err := DecodeModelJSON(`{"summary": "all claims hold"}`, &out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out["summary"] != "all claims hold" {
		t.Errorf("Unexpected decode result: %v", out)
	}
}

func TestDecodeModelJSON_SalvagesFromMarkdownFence(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"label\": \"SUPPORT\", \"entailment_score\": 0.9}\n```\nHope that helps!"

	var out struct {
		Label string  `json:"label"`
		Score float64 `json:"entailment_score"`
	}
	if err := DecodeModelJSON(raw, &out); err != nil {
		t.Fatalf("Expected salvage to succeed, got %v", err)
	}
	if out.Label != "SUPPORT" || out.Score != 0.9 {
		t.Errorf("Unexpected decode result: %+v", out)
	}
}

func TestDecodeModelJSON_SalvagesArray(t *testing.T) {
	raw := "The claims are: [\"first\", \"second\"] as requested."

	var out []string
	if err := DecodeModelJSON(raw, &out); err != nil {
		t.Fatalf("Expected salvage to succeed, got %v", err)
	}
	if len(out) != 2 || out[0] != "first" {
		t.Errorf("Unexpected decode result: %v", out)
	}
}

func TestDecodeModelJSON_NestedBracesUseOutermost(t *testing.T) {
	raw := `prefix {"outer": {"inner": 1}} suffix`

	var out map[string]any
	if err := DecodeModelJSON(raw, &out); err != nil {
		t.Fatalf("Expected salvage to succeed, got %v", err)
	}
	if _, ok := out["outer"]; !ok {
		t.Errorf("Expected outer object, got %v", out)
	}
}

func TestDecodeModelJSON_NoJSONIsError(t *testing.T) {
	var out map[string]any
	if err := DecodeModelJSON("I could not produce structured output, sorry.", &out); err == nil {
		t.Fatal("Expected error for output without JSON")
	}
}

// stubProvider returns a fixed completion
type stubProvider struct {
	content    string
	err        error
	lastSystem string
	lastUser   string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	s.lastSystem = req.System
	s.lastUser = req.User
	if s.err != nil {
		return nil, s.err
	}
	return &CompletionResponse{Content: s.content, Model: "stub-model"}, nil
}

func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func TestCompleteJSON_AppendsJSONOnlyInstruction(t *testing.T) {
	stub := &stubProvider{content: `{"ok": true}`}

	var out map[string]any
	err := CompleteJSON(context.Background(), stub, CompletionRequest{System: "Do the thing."}, &out)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(stub.lastSystem, "Return ONLY pure JSON") {
		t.Errorf("Expected JSON-only instruction in system prompt, got %q", stub.lastSystem)
	}
}

func TestCompleteJSON_ProviderErrorPropagates(t *testing.T) {
	stub := &stubProvider{err: errors.New("connection refused")}

	var out map[string]any
	if err := CompleteJSON(context.Background(), stub, CompletionRequest{}, &out); err == nil {
		t.Fatal("Expected provider error to propagate")
	}
}
