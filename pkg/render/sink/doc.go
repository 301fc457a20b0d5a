// Package sink provides output format renderers for layered drawings.
//
// # Overview
//
// A "sink" serializes a [render.Drawing] into a final output format. This
// package provides renderers for:
//
//   - SVG: Inkscape-layered vector drawing (one layer per color)
//   - PDF: Vector PDF via tdewolff/canvas
//   - JSON: Polygon data export for external tools
//
// # SVG Output
//
// [RenderSVG] writes one <g inkscape:groupmode="layer"> per layer, each
// holding unfilled <polygon> outlines. Output is byte-for-byte stable for a
// given drawing, so seeded runs can be compared directly.
//
//	svg := sink.RenderSVG(d,
//	    sink.WithTitle("polygons"),
//	    sink.WithPrecision(4),
//	)
//
// # SVG Options
//
//   - [WithTitle]: Add a <title> element
//   - [WithPrecision]: Fixed number of coordinate decimals (default: shortest exact)
//   - [WithLockedLayers]: Mark layers as locked in Inkscape
//
// # PDF Output
//
// [RenderPDF] draws the same polygons with a pixel to millimeter conversion
// (96 dpi). Layers are drawn in order; PDF has no layer groups here.
//
// # JSON Output
//
// [RenderJSON] exports layers and polygon vertices together with the
// generation settings needed to reproduce them.
//
// [render.Drawing]: github.com/matzehuels/polygrid/pkg/render.Drawing
package sink
