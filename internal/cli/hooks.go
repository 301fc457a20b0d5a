package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polygrid/pkg/observability"
)

// logHooks reports generation events as debug logs.
type logHooks struct {
	logger *log.Logger
}

var _ observability.GenerateHooks = logHooks{}

func (h logHooks) OnLayout(_ context.Context, rows, columns int, panelWidth, panelHeight float64) {
	h.logger.Debug("laid out grid", "rows", rows, "cols", columns, "panel", [2]float64{panelWidth, panelHeight})
}

func (h logHooks) OnFill(_ context.Context, panels, polygons int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fill aborted", "panels", panels, "err", err)
		return
	}
	h.logger.Debug("filled panels", "panels", panels, "polygons", polygons, "duration", d)
}

func (h logHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d)
}

func (h logHooks) OnWrite(_ context.Context, path string, size int, err error) {
	if err != nil {
		h.logger.Debug("write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("wrote", "path", path, "bytes", size)
}
