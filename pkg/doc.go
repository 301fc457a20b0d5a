// Package pkg holds the polygrid libraries.
//
// Data flows leaf first:
//
//	[scale]    size multipliers in [0.02, 1.0]
//	   ↓
//	[palette]  colors, built-in and TOML palette tables
//	   ↓
//	[grid]     panels and jittered quadrilaterals
//	   ↓
//	[render]   one layer per color, then SVG, PDF or JSON via render/sink
//	   ↓
//	[pipeline] options, seeding, artifact naming and atomic writes
//
// Generate a seeded drawing without touching the file system:
//
//	opts := pipeline.DefaultOptions()
//	seed := int64(7)
//	opts.Seed = &seed
//	result, err := pipeline.NewRunner(nil).Generate(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifacts[pipeline.FormatSVG])
//
// [errors], [observability] and [buildinfo] are shared support packages.
package pkg
