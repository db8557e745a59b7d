// Package policy evaluates append-admission decisions for incoming messages.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by Evaluate.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Input describes a message append for policy evaluation.
type Input struct {
	Role         string `json:"role"`
	Modality     string `json:"modality"`
	PayloadBytes int    `json:"payload_bytes"`
	MaxBlobBytes int    `json:"max_blob_bytes"`
}

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.message_policy.decision"),
		rego.Module("message_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the message policy and returns allow or block.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The default policy always defines a decision; an empty result
		// means a custom policy forgot the default.
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// DefaultPolicy is the default append-admission policy: known roles and
// modalities are allowed, blob payloads above the configured cap are blocked.
const DefaultPolicy = `
package message_policy

import rego.v1

default decision := "allow"

decision := "block" if {
	input.payload_bytes > input.max_blob_bytes
}

decision := "block" if {
	not input.role in {"user", "assistant"}
}

decision := "block" if {
	not input.modality in {"text", "image", "audio"}
}
`
