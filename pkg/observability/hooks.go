// Package observability lets callers observe generation runs without the
// library depending on any logging or metrics backend.
//
// Register hooks once at startup:
//
//	observability.SetGenerateHooks(myHooks{})
//
// The pipeline then reports each stage:
//
//	observability.Generate().OnFill(ctx, panels, polygons, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerateHooks receives events from a generation run.
type GenerateHooks interface {
	// OnLayout is called once the grid arena is laid out.
	OnLayout(ctx context.Context, rows, columns int, panelWidth, panelHeight float64)

	// OnFill is called after every panel has been filled.
	OnFill(ctx context.Context, panels, polygons int, duration time.Duration, err error)

	// OnRender is called once per output format.
	OnRender(ctx context.Context, format string, size int, duration time.Duration, err error)

	// OnWrite is called after an artifact is written (or failed to be).
	OnWrite(ctx context.Context, path string, size int, err error)
}

// NoopGenerateHooks ignores every event.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnLayout(context.Context, int, int, float64, float64)        {}
func (NoopGenerateHooks) OnFill(context.Context, int, int, time.Duration, error)      {}
func (NoopGenerateHooks) OnRender(context.Context, string, int, time.Duration, error) {}
func (NoopGenerateHooks) OnWrite(context.Context, string, int, error)                 {}

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers h. A nil h is ignored.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// Generate returns the registered generation hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Reset restores the no-op hooks. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
}
