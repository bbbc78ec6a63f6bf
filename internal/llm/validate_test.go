package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func analysisSchema() *Schema {
	return &Schema{
		Name:        "interview-analysis-test",
		Description: "Structured commentary on a training interview",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":   map[string]any{"type": "string"},
				"turns":     map[string]any{"type": "integer", "minimum": 0},
				"verdict":   map[string]any{"type": "string", "enum": []any{"hit", "near", "miss"}},
				"strengths": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"summary", "verdict"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"summary":"probed derailment well","turns":6,"verdict":"hit","strengths":["open questions"]}`)
	if err := validateResponse(analysisSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"summary":"short interview","verdict":"miss"}`)
	if err := validateResponse(analysisSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"no verdict"}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"x","turns":"six","verdict":"hit"}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"summary":"x","verdict":"maybe"}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(analysisSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	raw := json.RawMessage(`anything goes without a schema`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{`"plain utterance"`, "plain utterance"},
		{`raw unquoted text`, "raw unquoted text"},
	}
	for _, tt := range tests {
		r := &Response{Content: json.RawMessage(tt.content)}
		if got := r.Text(); got != tt.want {
			t.Errorf("Text(%s) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
