package sink

import (
	"encoding/json"

	"github.com/matzehuels/polygrid/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed     *int64
	settings *jsonSettings
}

// WithJSONSeed records the seed the drawing was generated with.
func WithJSONSeed(seed int64) JSONOption {
	return func(r *jsonRenderer) { r.seed = &seed }
}

// WithJSONGrid records the grid settings the drawing was generated with.
func WithJSONGrid(rows, columns, perPanel int, jitter float64) JSONOption {
	return func(r *jsonRenderer) {
		r.settings = &jsonSettings{Rows: rows, Columns: columns, PolygonsPerPanel: perPanel, Jitter: jitter}
	}
}

type jsonOutput struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Seed     *int64        `json:"seed,omitempty"`
	Settings *jsonSettings `json:"settings,omitempty"`
	Layers   []jsonLayer   `json:"layers"`
}

type jsonSettings struct {
	Rows             int     `json:"rows"`
	Columns          int     `json:"columns"`
	PolygonsPerPanel int     `json:"polygons_per_panel"`
	Jitter           float64 `json:"jitter"`
}

type jsonLayer struct {
	Label    string        `json:"label"`
	Color    string        `json:"color"`
	Polygons []jsonPolygon `json:"polygons"`
}

type jsonPolygon struct {
	Points      [4][2]float64 `json:"points"`
	Stroke      string        `json:"stroke"`
	StrokeWidth float64       `json:"stroke_width"`
	FillOpacity float64       `json:"fill_opacity"`
}

// RenderJSON exports d as a pretty-printed JSON document. Layers and
// polygons keep their drawing order.
func RenderJSON(d render.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    d.Width,
		Height:   d.Height,
		Seed:     r.seed,
		Settings: r.settings,
		Layers:   make([]jsonLayer, 0, len(d.Layers)),
	}
	for _, l := range d.Layers {
		jl := jsonLayer{Label: l.Label, Color: string(l.Color), Polygons: make([]jsonPolygon, 0, len(l.Polygons))}
		for _, p := range l.Polygons {
			jp := jsonPolygon{Stroke: string(p.Stroke), StrokeWidth: p.StrokeWidth, FillOpacity: p.FillOpacity}
			for i, pt := range p.Points {
				jp.Points[i] = [2]float64{pt.X, pt.Y}
			}
			jl.Polygons = append(jl.Polygons, jp)
		}
		out.Layers = append(out.Layers, jl)
	}

	return json.MarshalIndent(out, "", "  ")
}
