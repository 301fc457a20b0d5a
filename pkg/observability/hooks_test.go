package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopGenerateHooks
	fills int
}

func (r *recordingHooks) OnFill(context.Context, int, int, time.Duration, error) { r.fills++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	h := NoopGenerateHooks{}
	h.OnLayout(ctx, 10, 8, 100, 100)
	h.OnFill(ctx, 80, 800, time.Millisecond, nil)
	h.OnRender(ctx, "svg", 1024, time.Millisecond, nil)
	h.OnWrite(ctx, "output/x.svg", 1024, nil)
}

func TestGenerateHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Fatal("Generate() should return NoopGenerateHooks by default")
	}

	rec := &recordingHooks{}
	SetGenerateHooks(rec)
	if Generate() != rec {
		t.Fatal("SetGenerateHooks should register custom hooks")
	}
	Generate().OnFill(context.Background(), 1, 1, 0, nil)
	if rec.fills != 1 {
		t.Errorf("fills = %d, want 1", rec.fills)
	}

	SetGenerateHooks(nil)
	if Generate() != rec {
		t.Error("SetGenerateHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Generate().(NoopGenerateHooks); !ok {
		t.Error("Reset() should restore the no-op hooks")
	}
}
