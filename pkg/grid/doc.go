// Package grid partitions a canvas into panels and fills each panel with
// randomly sized, optionally jittered quadrilaterals.
//
// # Layout
//
// A [Grid] splits a width×height canvas into Rows×Columns panels. Panel
// dimensions are rounded to 8 decimal digits and every [Panel] rounds its own
// size and insertion point to 4 digits.
//
// # Randomness
//
// All draws come from one explicitly passed [Source]. For a given source
// state the output is fully determined, because the draw order is fixed:
// panels row-major, then per polygon the color index (only with more than one
// color), the size, and, when jitter is enabled, an x and a y factor for each
// of the four vertices in order.
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	g, err := grid.New(grid.Config{Width: 800, Height: 1000, Rows: 10}, rng)
//	if err != nil {
//	    return err
//	}
//	polys, err := g.Fill(ctx)
package grid
