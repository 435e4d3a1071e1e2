package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func scoringSchema() *Schema {
	return &Schema{
		Name:        "test-scoring",
		Description: "Pillar scores for one session",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"numeracy":        map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
				"reading":         map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				"readiness_level": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required": []any{"numeracy", "reading", "readiness_level"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"numeracy":7,"reading":3,"readiness_level":2}`)
	if err := validateResponse(scoringSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"numeracy":7,"reading":3}`)
	err := validateResponse(scoringSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"numeracy":11,"reading":3,"readiness_level":2}`)
	err := validateResponse(scoringSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"numeracy":`)
	err := validateResponse(scoringSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Fatalf("nil schema must skip validation, got: %v", err)
	}
}
