// Package pipeline turns a set of options into rendered polygon artwork.
//
// A run has four stages:
//
//  1. Seed: build the random source (PCG, seeded or not)
//  2. Colors: use explicit colors, draw n colors from a palette table, or fall back to black
//  3. Fill: lay out the grid and fill every panel in row-major order
//  4. Render: assemble color layers and serialize them (SVG, PDF, JSON)
//
// The [Runner] runs the stages and optionally writes the artifacts:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Rows, opts.Jitter = 8, 0.03
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Files)
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/palette"
	"github.com/matzehuels/polygrid/pkg/render"
)

const (
	DefaultWidth            = 800.0
	DefaultHeight           = 1000.0
	DefaultRows             = 10
	DefaultPolygonsPerPanel = 10
	DefaultBasename         = "polygons"
	DefaultOutputDir        = "output"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported output formats in rendering order.
var Formats = []string{FormatSVG, FormatPDF, FormatJSON}

// Options configures a generation run. It is populated from CLI flags or a
// TOML config file (see [LoadOptions]).
type Options struct {
	Width            float64  `json:"width" toml:"width"`
	Height           float64  `json:"height" toml:"height"`
	Rows             int      `json:"rows" toml:"rows"`
	Columns          int      `json:"columns,omitempty" toml:"columns"` // 0 means same as Rows
	PolygonsPerPanel int      `json:"polygons_per_panel" toml:"polygons_per_panel"`
	Jitter           float64  `json:"jitter,omitempty" toml:"jitter"`
	Colors           []string `json:"colors,omitempty" toml:"colors"`     // wins over NColors
	NColors          int      `json:"n_colors,omitempty" toml:"n_colors"` // 0 means unused
	PaletteFile      string   `json:"palette_file,omitempty" toml:"palette_file"`
	Seed             *int64   `json:"seed,omitempty" toml:"seed"`

	Basename       string   `json:"output,omitempty" toml:"output"`
	OutputDir      string   `json:"output_dir,omitempty" toml:"output_dir"`
	AppendDatetime bool     `json:"append_datetime,omitempty" toml:"append_datetime"`
	Formats        []string `json:"formats,omitempty" toml:"formats"`
	Title          string   `json:"title,omitempty" toml:"title"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Rows:             DefaultRows,
		PolygonsPerPanel: DefaultPolygonsPerPanel,
		Basename:         DefaultBasename,
		OutputDir:        DefaultOutputDir,
		Formats:          []string{FormatSVG},
	}
}

// Result is the outcome of a run.
type Result struct {
	// Colors are the resolved grid colors, in configuration order.
	Colors []palette.Color

	// Seed is the seed used, nil for an unseeded run.
	Seed *int64

	Drawing render.Drawing

	// Artifacts holds the rendered output keyed by format.
	Artifacts map[string][]byte

	// Files holds the written paths keyed by format. Empty until written.
	Files map[string]string

	Stats Stats
}

// Stats holds counts and timings of a run.
type Stats struct {
	Panels     int
	Polygons   int
	Layers     int
	FillTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills in the output fields left empty. Numeric fields are
// not defaulted: a zero width is an error, not a request for the default.
func (o *Options) SetDefaults() {
	if o.Basename == "" {
		o.Basename = DefaultBasename
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
}

// Validate reports the first invalid option. It does not touch the file
// system; palette files are checked when loaded.
func (o *Options) Validate() error {
	if err := o.GridConfig(nil).Validate(); err != nil {
		return err
	}
	for _, c := range o.Colors {
		if _, err := palette.ParseColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color")
		}
	}
	if o.NColors < 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "n_colors must not be negative, got %d", o.NColors)
	}
	if err := errors.ValidateBasename(o.Basename); err != nil {
		return err
	}
	if o.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidPath, "output directory cannot be empty")
	}
	return ValidateFormats(o.Formats)
}

// GridConfig returns the grid configuration for o with the given resolved
// colors.
func (o *Options) GridConfig(colors []palette.Color) grid.Config {
	return grid.Config{
		Width:            o.Width,
		Height:           o.Height,
		Rows:             o.Rows,
		Columns:          o.Columns,
		PolygonsPerPanel: o.PolygonsPerPanel,
		Jitter:           o.Jitter,
		Colors:           colors,
	}
}
