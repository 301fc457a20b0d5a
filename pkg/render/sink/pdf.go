package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/render"
)

// mmPerPx converts CSS pixels (96 dpi) to canvas millimeters.
const mmPerPx = 25.4 / 96

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title string
}

// WithPDFTitle sets the document title in the PDF info dictionary.
func WithPDFTitle(s string) PDFOption {
	return func(r *pdfRenderer) { r.title = s }
}

// RenderPDF renders d as a single-page vector PDF.
func RenderPDF(d render.Drawing, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("pdf: invalid page size %vx%v", d.Width, d.Height)
	}

	w, h := d.Width*mmPerPx, d.Height*mmPerPx
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, y down, as in SVG
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})

	for _, l := range d.Layers {
		for _, p := range l.Polygons {
			ctx.SetStrokeColor(p.Stroke.Colorful())
			ctx.SetStrokeWidth(p.StrokeWidth * mmPerPx)
			ctx.DrawPath(0, 0, polygonPath(p))
		}
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo(r.title, "", "", "", "polygrid")
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func polygonPath(p grid.Polygon) *canvas.Path {
	path := &canvas.Path{}
	for i, pt := range p.Points {
		x, y := pt.X*mmPerPx, pt.Y*mmPerPx
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()
	return path
}
