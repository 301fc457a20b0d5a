package grid

import (
	"fmt"

	"github.com/matzehuels/polygrid/pkg/palette"
	"github.com/matzehuels/polygrid/pkg/scale"
)

// Panel is one grid cell and the polygons generated inside it.
type Panel struct {
	Width, Height float64
	Insert        Point // top-left corner in canvas coordinates
	N             int   // polygons added per Fill call
	Polygons      []Polygon

	rng Source
}

// NewPanel creates a panel of the given size at insert. Size and insertion
// point are rounded to 4 decimal digits.
func NewPanel(width, height float64, insert Point, n int, rng Source) *Panel {
	return &Panel{
		Width:  round(width, vertexDigits),
		Height: round(height, vertexDigits),
		Insert: Point{round(insert.X, vertexDigits), round(insert.Y, vertexDigits)},
		N:      n,
		rng:    rng,
	}
}

func (p *Panel) String() string {
	return fmt.Sprintf("Panel W: %g, H: %g, at (%g, %g), N: %d", p.Width, p.Height, p.Insert.X, p.Insert.Y, p.N)
}

// BaseVertices returns a w×h rectangle centered in the panel, in panel-local
// coordinates, ordered top-left, top-right, bottom-right, bottom-left.
func (p *Panel) BaseVertices(w, h float64) [4]Point {
	left := round(p.Width/2, vertexDigits) - round(w/2, vertexDigits)
	top := round(p.Height/2, vertexDigits) - round(h/2, vertexDigits)
	right := left + w
	bottom := top + h

	return [4]Point{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}
}

// Jitter displaces every vertex by (w*fx, h*fy). With randomRange each
// factor is drawn independently from [-frac, frac] in steps of 1e-6, x before
// y, vertex by vertex. Without it every factor equals frac.
func (p *Panel) Jitter(pts [4]Point, w, h, frac float64, randomRange bool) [4]Point {
	factor := func() float64 { return frac }
	if randomRange {
		limit := int(frac * jitterResolution)
		factor = func() float64 {
			return float64(p.rng.IntN(2*limit+1)-limit) / jitterResolution
		}
	}

	var out [4]Point
	for i, pt := range pts {
		fx := factor()
		fy := factor()
		out[i] = Point{pt.X + w*fx, pt.Y + h*fy}
	}
	return out
}

// Polygon builds one w×h polygon centered in the panel, jittered when frac
// is nonzero, in canvas coordinates. An empty color strokes in black.
func (p *Panel) Polygon(w, h, frac float64, c palette.Color, randomRange bool) Polygon {
	pts := p.BaseVertices(w, h)
	if frac != 0 {
		pts = p.Jitter(pts, w, h, frac, randomRange)
	}
	for i := range pts {
		pts[i] = pts[i].Add(p.Insert)
	}
	if c == "" {
		c = palette.Black
	}
	return Polygon{
		Points:      pts,
		Stroke:      c,
		StrokeWidth: StrokeWidth,
		FillOpacity: FillOpacity,
	}
}

// Fill appends N randomly sized polygons and returns all polygons of the
// panel. Calling Fill again adds N more; earlier polygons are kept, so
// several passes (for example with different jitter) can be layered.
func (p *Panel) Fill(colors []palette.Color, frac float64) []Polygon {
	for range p.N {
		c := palette.Black
		switch {
		case len(colors) > 1:
			c = colors[p.rng.IntN(len(colors))]
		case len(colors) == 1:
			c = colors[0]
		}

		mult := scale.Unit(p.rng.Float64())
		p.Polygons = append(p.Polygons, p.Polygon(mult*p.Width, mult*p.Height, frac, c, true))
	}
	return p.Polygons
}
