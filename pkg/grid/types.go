package grid

import (
	"math"

	"github.com/matzehuels/polygrid/pkg/palette"
)

const (
	// StrokeWidth is the stroke width of every generated polygon.
	StrokeWidth = 1.0

	// FillOpacity is the fill opacity of every generated polygon.
	FillOpacity = 0.0

	panelDigits  = 8
	vertexDigits = 4

	// jitterResolution is the number of steps per unit of jitter factor.
	jitterResolution = 1_000_000
)

// Source is the random generator threaded through layout and filling.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Point is an (x, y) coordinate in pixels.
type Point struct {
	X, Y float64
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Polygon is an outline-only quadrilateral in canvas coordinates.
type Polygon struct {
	Points      [4]Point
	Stroke      palette.Color
	StrokeWidth float64
	FillOpacity float64
}

func round(v float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}
