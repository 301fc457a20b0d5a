package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/polygrid/pkg/palette"
	"github.com/matzehuels/polygrid/pkg/pipeline"
)

// generateFlags holds the raw flag values of the generate command. Only
// flags the user set are applied on top of the config file.
type generateFlags struct {
	opts    pipeline.Options
	seed    int64
	formats string
	config  string
}

func (c *CLI) generateCommand() *cobra.Command {
	flags := newGenerateFlags()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fill a grid with jittered polygons and write it as vector art",
		Example: `  polygrid generate -m 8 -n 6 --n-polygons 12 -j 0.02 -r 7
  polygrid generate --colors "#69D2E7,#F38630" -f svg,pdf
  polygrid generate --n-colors 3 --append-datetime
  polygrid generate -c polygrid.toml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newGenerateFlags() *generateFlags {
	return &generateFlags{opts: pipeline.DefaultOptions(), formats: pipeline.FormatSVG}
}

func (g *generateFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&g.opts.Width, "width", g.opts.Width, "canvas width in pixels")
	fs.Float64Var(&g.opts.Height, "height", g.opts.Height, "canvas height in pixels")
	fs.IntVarP(&g.opts.Rows, "rows", "m", g.opts.Rows, "number of panel rows")
	fs.IntVarP(&g.opts.Columns, "cols", "n", 0, "number of panel columns (0 = same as rows)")
	fs.IntVar(&g.opts.PolygonsPerPanel, "n-polygons", g.opts.PolygonsPerPanel, "polygons per panel")
	fs.Float64VarP(&g.opts.Jitter, "jitter", "j", 0, "max vertex jitter as a fraction of polygon size, e.g. 0.01")
	fs.StringSliceVar(&g.opts.Colors, "colors", nil, "hex colors, e.g. #00FF00,#0000FF (overrides --n-colors)")
	fs.IntVar(&g.opts.NColors, "n-colors", 0, "number of colors to draw from the palette table")
	fs.StringVar(&g.opts.PaletteFile, "palette-file", "", "TOML palette table replacing the built-in palettes")
	fs.Int64VarP(&g.seed, "seed", "r", 0, "random seed (unseeded if not set)")
	fs.StringVarP(&g.opts.Basename, "output", "o", g.opts.Basename, "output file basename")
	fs.StringVar(&g.opts.OutputDir, "output-dir", g.opts.OutputDir, "output directory (created if missing)")
	fs.BoolVar(&g.opts.AppendDatetime, "append-datetime", false, "append a unix timestamp to the filename")
	fs.StringVarP(&g.formats, "format", "f", g.formats, "output format(s): svg, pdf, json (comma-separated)")
	fs.StringVar(&g.opts.Title, "title", "", "document title embedded in SVG and PDF output")
	fs.StringVarP(&g.config, "config", "c", "", "TOML config file; flags given explicitly override it")
}

// resolve starts from the config file (or the defaults) and applies every
// flag that was set on the command line.
func (g *generateFlags) resolve(fs *pflag.FlagSet) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if g.config != "" {
		var err error
		if opts, err = pipeline.LoadOptions(g.config); err != nil {
			return pipeline.Options{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = g.opts.Width
		case "height":
			opts.Height = g.opts.Height
		case "rows":
			opts.Rows = g.opts.Rows
		case "cols":
			opts.Columns = g.opts.Columns
		case "n-polygons":
			opts.PolygonsPerPanel = g.opts.PolygonsPerPanel
		case "jitter":
			opts.Jitter = g.opts.Jitter
		case "colors":
			opts.Colors = g.opts.Colors
		case "n-colors":
			opts.NColors = g.opts.NColors
		case "palette-file":
			opts.PaletteFile = g.opts.PaletteFile
		case "seed":
			seed := g.seed
			opts.Seed = &seed
		case "output":
			opts.Basename = g.opts.Basename
		case "output-dir":
			opts.OutputDir = g.opts.OutputDir
		case "append-datetime":
			opts.AppendDatetime = g.opts.AppendDatetime
		case "format":
			opts.Formats = parseFormats(g.formats)
		case "title":
			opts.Title = g.opts.Title
		}
	})
	return opts, nil
}

func (c *CLI) runGenerate(ctx context.Context, out io.Writer, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d polygons", result.Stats.Polygons))

	printSuccess(out, "Generated %d polygons in %d panels", result.Stats.Polygons, result.Stats.Panels)
	for _, format := range opts.Formats {
		if path, ok := result.Files[format]; ok {
			printFile(out, path)
		}
	}

	seed := "none"
	if result.Seed != nil {
		seed = strconv.FormatInt(*result.Seed, 10)
	}
	printKeyValue(out, "seed", seed)
	printKeyValue(out, "colors", strings.Join(palette.Strings(result.Colors), " "))
	printStats(out,
		fmt.Sprintf("%d layers", result.Stats.Layers),
		fmt.Sprintf("fill %s", result.Stats.FillTime.Round(time.Microsecond)),
		fmt.Sprintf("render %s", result.Stats.RenderTime.Round(time.Microsecond)))
	return nil
}
