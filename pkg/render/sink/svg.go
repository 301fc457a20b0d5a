package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/render"
)

const svgHeader = `<?xml version="1.0" encoding="utf-8" ?>` + "\n"

const (
	nsSVG      = "http://www.w3.org/2000/svg"
	nsInkscape = "http://www.inkscape.org/namespaces/inkscape"
	nsSodipodi = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title     string
	precision int
	locked    bool
}

func WithTitle(s string) SVGOption  { return func(r *svgRenderer) { r.title = s } }
func WithPrecision(n int) SVGOption { return func(r *svgRenderer) { r.precision = n } }
func WithLockedLayers() SVGOption   { return func(r *svgRenderer) { r.locked = true } }

// RenderSVG serializes d as an SVG document with one Inkscape layer per
// drawing layer.
func RenderSVG(d render.Drawing, opts ...SVGOption) []byte {
	r := svgRenderer{precision: -1}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString(svgHeader)
	w, h := r.num(d.Width), r.num(d.Height)
	fmt.Fprintf(&buf, `<svg xmlns="%s" xmlns:inkscape="%s" xmlns:sodipodi="%s" version="1.1" baseProfile="full" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		nsSVG, nsInkscape, nsSodipodi, w, h, w, h)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}

	for i, l := range d.Layers {
		r.renderLayer(&buf, i+1, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderLayer(buf *bytes.Buffer, n int, l render.Layer) {
	fmt.Fprintf(buf, `  <g id="layer%d" inkscape:groupmode="layer" inkscape:label="%s"`, n, html.EscapeString(l.Label))
	if r.locked {
		buf.WriteString(` sodipodi:insensitive="true"`)
	}
	buf.WriteString(">\n")
	for _, p := range l.Polygons {
		r.renderPolygon(buf, p)
	}
	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) renderPolygon(buf *bytes.Buffer, p grid.Polygon) {
	buf.WriteString(`    <polygon points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(r.num(pt.X))
		buf.WriteByte(',')
		buf.WriteString(r.num(pt.Y))
	}
	fmt.Fprintf(buf, `" stroke="%s" stroke-width="%s" fill-opacity="%s" />`+"\n",
		html.EscapeString(string(p.Stroke)), r.num(p.StrokeWidth), opacity(p.FillOpacity))
}

func (r *svgRenderer) num(v float64) string {
	return strconv.FormatFloat(v, 'f', r.precision, 64)
}

// opacity formats v with one decimal place (0.0, 0.5, 1.0).
func opacity(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
