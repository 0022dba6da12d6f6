package services_test

import (
	"context"
	"testing"

	"github.com/SayCV/subspy/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithCommand(ctx, "rename")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if command, ok := services.CommandFromContext(ctx); !ok || command != "rename" {
		t.Fatalf("unexpected command: %v %v", command, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := services.WithCommand(services.WithRunID(context.Background(), ""), "")
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id")
	}
	if _, ok := services.CommandFromContext(ctx); ok {
		t.Fatal("expected no command")
	}
}
