package render

import (
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/palette"
)

// Drawing is a canvas of layered polygons ready for serialization.
type Drawing struct {
	Width, Height float64 // pixels
	Layers        []Layer
}

// Layer is a named group of polygons sharing one stroke color.
type Layer struct {
	Label    string
	Color    palette.Color
	Polygons []grid.Polygon
}

// PolygonCount returns the number of polygons across all layers.
func (d Drawing) PolygonCount() int {
	n := 0
	for _, l := range d.Layers {
		n += len(l.Polygons)
	}
	return n
}

// LayerLabel returns the display name of the layer holding color c.
func LayerLabel(c palette.Color) string {
	return "Layer " + string(c)
}

// Assemble groups polys into one layer per distinct color, in first
// occurrence order of colors. Each polygon goes to the layer matching its
// stroke; with a single color (or a polygon whose stroke matches no layer)
// it goes to the first layer. Empty colors fall back to black.
func Assemble(width, height float64, colors []palette.Color, polys []grid.Polygon) Drawing {
	if len(colors) == 0 {
		colors = []palette.Color{palette.Black}
	}

	d := Drawing{Width: width, Height: height}
	index := make(map[palette.Color]int, len(colors))
	for _, c := range colors {
		if _, ok := index[c]; ok {
			continue
		}
		index[c] = len(d.Layers)
		d.Layers = append(d.Layers, Layer{Label: LayerLabel(c), Color: c})
	}

	for _, p := range polys {
		i := 0
		if len(d.Layers) > 1 {
			i = index[p.Stroke]
		}
		d.Layers[i].Polygons = append(d.Layers[i].Polygons, p)
	}
	return d
}
