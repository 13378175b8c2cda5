package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/food_orders/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestActor_PutAndGet(t *testing.T) {
	ctx := ctxmeta.WithActor(context.Background(), ctxmeta.Actor{ID: "u-1", Role: "vendor"})

	a, ok := ctxmeta.ActorFromContext(ctx)
	if !ok || a.ID != "u-1" || a.Role != "vendor" {
		t.Fatalf("unexpected actor %+v ok=%v", a, ok)
	}
}

func TestActor_EmptyIDIgnored(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithActor(parent, ctxmeta.Actor{Role: "admin"}); ctx != parent {
		t.Fatalf("actor without id must not be stored")
	}
	if _, ok := ctxmeta.ActorFromContext(parent); ok {
		t.Fatalf("empty ctx must not contain actor")
	}
}
