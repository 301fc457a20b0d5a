package grid

import (
	"context"
	"fmt"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/palette"
)

// MaxJitter bounds the jitter fraction so the integer draw range stays
// representable.
const MaxJitter = 1_000_000

// Config describes a grid.
type Config struct {
	Width, Height    float64 // canvas size in pixels
	Rows             int
	Columns          int // 0 means same as Rows
	PolygonsPerPanel int
	Jitter           float64 // vertex jitter as a fraction of polygon size
	Colors           []palette.Color
}

// WithDefaults returns a copy of c with Columns and Colors filled in.
func (c Config) WithDefaults() Config {
	if c.Columns == 0 {
		c.Columns = c.Rows
	}
	if len(c.Colors) == 0 {
		c.Colors = []palette.Color{palette.Black}
	}
	return c
}

// Validate reports the first invalid parameter of c.
func (c Config) Validate() error {
	if err := errors.ValidateDimension("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", c.Height); err != nil {
		return err
	}
	if c.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "rows must be at least 1, got %d", c.Rows)
	}
	if c.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "columns must be at least 1, got %d", c.Columns)
	}
	if c.PolygonsPerPanel < 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "polygons per panel must not be negative, got %d", c.PolygonsPerPanel)
	}
	if err := errors.ValidateFraction("jitter", c.Jitter, MaxJitter); err != nil {
		return err
	}
	for _, col := range c.Colors {
		if parsed, err := palette.ParseColor(string(col)); err != nil || parsed != col {
			return errors.New(errors.ErrCodeInvalidColor, "color %q is not of the form #RRGGBB", col)
		}
	}
	return nil
}

// Grid is a Rows×Columns lattice of panels covering the canvas.
type Grid struct {
	cfg            Config
	panelW, panelH float64
	panels         []*Panel // row-major, index i*Columns+j; nil until Layout
	rng            Source
}

// New validates cfg, applies defaults, and returns an empty grid. Call
// [Grid.Layout] or [Grid.Fill] to create the panels.
func New(cfg Config, rng Source) (*Grid, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New(errors.ErrCodeInternal, "grid requires a random source")
	}
	g := &Grid{cfg: cfg, rng: rng}
	g.panelW, g.panelH = g.computePanelDimensions()
	return g, nil
}

// Config returns the effective configuration.
func (g *Grid) Config() Config { return g.cfg }

func (g *Grid) String() string {
	return fmt.Sprintf("Grid W: %g, H: %g, ROWS: %d, COLS: %d, COLORS: %v, JITTER: %g",
		g.cfg.Width, g.cfg.Height, g.cfg.Rows, g.cfg.Columns, g.cfg.Colors, g.cfg.Jitter)
}

// PanelDimensions returns the width and height of every panel, rounded to 8
// decimal digits.
func (g *Grid) PanelDimensions() (width, height float64) {
	return g.panelW, g.panelH
}

func (g *Grid) computePanelDimensions() (float64, float64) {
	return round(g.cfg.Width/float64(g.cfg.Columns), panelDigits),
		round(g.cfg.Height/float64(g.cfg.Rows), panelDigits)
}

// Len returns the number of panel slots.
func (g *Grid) Len() int { return g.cfg.Rows * g.cfg.Columns }

// Layout creates one panel per (row, column). Panel (i, j) sits at
// (panelWidth*j, panelHeight*i). Calling Layout again replaces every panel.
func (g *Grid) Layout() {
	g.panels = make([]*Panel, g.Len())
	for i := range g.cfg.Rows {
		for j := range g.cfg.Columns {
			insert := Point{g.panelW * float64(j), g.panelH * float64(i)}
			g.panels[g.index(i, j)] = NewPanel(g.panelW, g.panelH, insert, g.cfg.PolygonsPerPanel, g.rng)
		}
	}
}

// Panel returns the panel at row i, column j, or nil if the grid has not
// been laid out or the coordinates are out of range.
func (g *Grid) Panel(i, j int) *Panel {
	if g.panels == nil || i < 0 || i >= g.cfg.Rows || j < 0 || j >= g.cfg.Columns {
		return nil
	}
	return g.panels[g.index(i, j)]
}

// Panels returns the panels in row-major order.
func (g *Grid) Panels() []*Panel { return g.panels }

func (g *Grid) index(i, j int) int { return i*g.cfg.Columns + j }

// Fill lays the grid out if needed, fills every panel in row-major order
// with the configured colors and jitter, and returns the polygons this call
// generated, in generation order. It stops early when ctx is canceled.
func (g *Grid) Fill(ctx context.Context) ([]Polygon, error) {
	if g.panels == nil {
		g.Layout()
	}

	polys := make([]Polygon, 0, g.Len()*g.cfg.PolygonsPerPanel)
	for _, p := range g.panels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := len(p.Polygons)
		p.Fill(g.cfg.Colors, g.cfg.Jitter)
		polys = append(polys, p.Polygons[before:]...)
	}
	return polys, nil
}
