// Package render turns generated polygons into a layered drawing.
//
// # Overview
//
// [Assemble] groups polygons into one [Layer] per distinct configured color,
// in the order the colors were configured. The resulting [Drawing] is handed
// to a sink for serialization:
//
//	d := render.Assemble(800, 1000, colors, polys)
//	svg := sink.RenderSVG(d)
//	pdf, err := sink.RenderPDF(d)
//
// No geometry happens here; positions are final once the grid has been
// filled.
//
// # Sinks
//
// The [sink] subpackage provides the output formats:
//   - SVG with Inkscape layer groups (default)
//   - PDF (vector, via tdewolff/canvas)
//   - JSON polygon dump
//
// [sink]: github.com/matzehuels/polygrid/pkg/render/sink
package render
