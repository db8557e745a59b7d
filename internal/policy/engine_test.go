package policy

import (
	"context"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return engine
}

func TestEvaluateAllowsText(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), Input{
		Role:         "user",
		Modality:     "text",
		PayloadBytes: 12,
		MaxBlobBytes: 1024,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != DecisionAllow {
		t.Fatalf("expected allow, got %q", decision)
	}
}

func TestEvaluateBlocksOversizedBlob(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), Input{
		Role:         "user",
		Modality:     "image",
		PayloadBytes: 2048,
		MaxBlobBytes: 1024,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != DecisionBlock {
		t.Fatalf("expected block, got %q", decision)
	}
}

func TestEvaluateBlocksUnknownRole(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), Input{
		Role:         "system",
		Modality:     "text",
		MaxBlobBytes: 1024,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != DecisionBlock {
		t.Fatalf("expected block, got %q", decision)
	}
}
