package v1

import (
	"context"
	"testing"

	"github.com/kexin8/multichat/internal/adapter/llm"
	"github.com/kexin8/multichat/internal/config"
	"github.com/kexin8/multichat/internal/policy"
	"github.com/kexin8/multichat/internal/service"
	"github.com/kexin8/multichat/tests/helpers"
)

func newTestHandler(t *testing.T) (*Handler, *service.Service) {
	t.Helper()

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	cfg := &config.Config{
		ChatMemoryLength: 6,
		MaxBlobBytes:     1 << 20,
		ChunkSize:        1000,
		ChunkOverlap:     100,
	}

	svc := service.New(helpers.NewTestSQLiteStore(t), llm.NewMockClient(), nil, nil, engine, cfg)
	return NewHandler(svc), svc
}
