// Package palette holds the color data and the random palette selection used
// by the generator.
//
// A palette table is a set of named groups, each an ordered list of colors.
// [Select] draws a whole color set from one group:
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	colors, err := palette.Select(rng, 3, palette.Builtin())
package palette

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Source is the subset of a random generator needed for selection.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// ErrNoPaletteLargeEnough is returned when every group holds fewer colors
// than requested.
var ErrNoPaletteLargeEnough = errors.New("no palette group has enough colors")

// Groups maps a palette name to its colors.
type Groups map[string][]Color

// Names returns the group names in sorted order.
func (g Groups) Names() []string {
	return slices.Sorted(maps.Keys(g))
}

// Largest returns the size of the biggest group.
func (g Groups) Largest() int {
	n := 0
	for _, cs := range g {
		n = max(n, len(cs))
	}
	return n
}

// Eligible returns, in name order, the groups holding at least n colors.
func (g Groups) Eligible(n int) []string {
	var names []string
	for _, name := range g.Names() {
		if len(g[name]) >= n {
			names = append(names, name)
		}
	}
	return names
}

// Select picks one group uniformly among those with at least n colors and
// samples n colors from it with replacement. The result may contain
// duplicates and is not in palette order.
//
// Groups are considered in sorted-name order so the draws are reproducible
// for a seeded rng.
func Select(rng Source, n int, groups Groups) ([]Color, error) {
	if n < 1 {
		return nil, fmt.Errorf("n_colors must be at least 1, got %d", n)
	}
	eligible := groups.Eligible(n)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: n_colors=%d, largest group has %d", ErrNoPaletteLargeEnough, n, groups.Largest())
	}

	group := groups[eligible[rng.IntN(len(eligible))]]
	out := make([]Color, n)
	for i := range out {
		out[i] = group[rng.IntN(len(group))]
	}
	return out, nil
}
