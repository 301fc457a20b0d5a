package pipeline

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/observability"
	"github.com/matzehuels/polygrid/pkg/palette"
	"github.com/matzehuels/polygrid/pkg/render"
	"github.com/matzehuels/polygrid/pkg/render/sink"
)

// Runner executes generation runs. It holds no run state, so one Runner
// may serve several runs.
type Runner struct {
	Logger *log.Logger

	// Now returns the time used for timestamped filenames.
	Now func() time.Time
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger, Now: time.Now}
}

// NewSource returns the PCG-backed random source for seed. A nil seed
// draws the PCG state from the runtime's random source.
func NewSource(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s^0xdeadbeef))
}

// Execute generates the artwork and writes every artifact.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := r.Write(ctx, result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// Generate validates opts, fills the grid and renders every requested
// format. Nothing is written.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	groups, err := r.paletteGroups(opts)
	if err != nil {
		return nil, err
	}

	rng := NewSource(opts.Seed)
	colors, err := resolveColors(opts, groups, rng)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(opts.GridConfig(colors), rng)
	if err != nil {
		return nil, err
	}
	cfg := g.Config()
	r.Logger.Debug(g.String())

	g.Layout()
	pw, ph := g.PanelDimensions()
	observability.Generate().OnLayout(ctx, cfg.Rows, cfg.Columns, pw, ph)

	result := &Result{
		Colors:    cfg.Colors,
		Seed:      opts.Seed,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Files:     make(map[string]string, len(opts.Formats)),
	}

	start := time.Now()
	polys, err := g.Fill(ctx)
	result.Stats.FillTime = time.Since(start)
	observability.Generate().OnFill(ctx, g.Len(), len(polys), result.Stats.FillTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.Panels = g.Len()
	result.Stats.Polygons = len(polys)

	result.Drawing = render.Assemble(cfg.Width, cfg.Height, cfg.Colors, polys)
	result.Stats.Layers = len(result.Drawing.Layers)
	r.Logger.Info("filled grid",
		"panels", result.Stats.Panels,
		"polygons", result.Stats.Polygons,
		"layers", result.Stats.Layers,
		"duration", result.Stats.FillTime)

	start = time.Now()
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		renderStart := time.Now()
		data, err := renderFormat(format, result.Drawing, cfg, opts)
		observability.Generate().OnRender(ctx, format, len(data), time.Since(renderStart), err)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(start)
	r.Logger.Debug("rendered", "formats", opts.Formats, "duration", result.Stats.RenderTime)

	return result, nil
}

// Write stores every artifact of result under opts.OutputDir, creating the
// directory if needed, and records the paths in result.Files.
func (r *Runner) Write(ctx context.Context, result *Result, opts Options) error {
	opts.SetDefaults()
	now := r.Now()
	start := time.Now()
	for _, format := range opts.Formats {
		data, ok := result.Artifacts[format]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := FileName(opts.Basename, len(result.Colors), opts.PolygonsPerPanel, opts.Jitter, result.Seed, opts.AppendDatetime, now, format)
		path, err := WriteAtomic(opts.OutputDir, name, data)
		observability.Generate().OnWrite(ctx, path, len(data), err)
		if err != nil {
			return err
		}
		result.Files[format] = path
		r.Logger.Debug("wrote artifact", "path", path, "bytes", len(data))
	}
	result.Stats.WriteTime = time.Since(start)
	return nil
}

func (r *Runner) paletteGroups(opts Options) (palette.Groups, error) {
	if len(opts.Colors) > 0 || opts.NColors == 0 {
		return nil, nil
	}
	groups := palette.Builtin()
	if opts.PaletteFile != "" {
		var err error
		groups, err = palette.LoadFile(opts.PaletteFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "load palette file %s", opts.PaletteFile)
		}
		r.Logger.Debug("loaded palette file", "path", opts.PaletteFile, "groups", len(groups))
	}
	if len(groups.Eligible(opts.NColors)) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPalette,
			"n_colors=%d exceeds every palette group (largest has %d colors)", opts.NColors, groups.Largest())
	}
	return groups, nil
}

// resolveColors applies the color precedence: explicit colors, then n
// colors drawn from groups, then black.
func resolveColors(opts Options, groups palette.Groups, rng *rand.Rand) ([]palette.Color, error) {
	if len(opts.Colors) > 0 {
		colors, err := palette.ParseColors(opts.Colors)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color")
		}
		return colors, nil
	}
	if opts.NColors > 0 {
		colors, err := palette.Select(rng, opts.NColors, groups)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPalette, err, "select palette")
		}
		return colors, nil
	}
	return []palette.Color{palette.Black}, nil
}

func renderFormat(format string, d render.Drawing, cfg grid.Config, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Title != "" {
			svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
		}
		return sink.RenderSVG(d, svgOpts...), nil
	case FormatPDF:
		return sink.RenderPDF(d, sink.WithPDFTitle(opts.Title))
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONGrid(cfg.Rows, cfg.Columns, cfg.PolygonsPerPanel, cfg.Jitter)}
		if opts.Seed != nil {
			jsonOpts = append(jsonOpts, sink.WithJSONSeed(*opts.Seed))
		}
		return sink.RenderJSON(d, jsonOpts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}
