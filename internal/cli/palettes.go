package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/palette"
)

func (c *CLI) palettesCommand() *cobra.Command {
	var paletteFile string
	var minColors int

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the palette table used by --n-colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := palette.Builtin()
			if paletteFile != "" {
				var err error
				if groups, err = palette.LoadFile(paletteFile); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidPalette, err, "load palette file %s", paletteFile)
				}
				loggerFromContext(cmd.Context()).Debug("loaded palette file", "path", paletteFile, "groups", len(groups))
			}
			printPalettes(cmd.OutOrStdout(), groups, minColors)
			return nil
		},
	}

	cmd.Flags().StringVar(&paletteFile, "palette-file", "", "TOML palette table to list instead of the built-in one")
	cmd.Flags().IntVar(&minColors, "min-colors", 0, "only list palettes with at least this many colors")

	return cmd
}

// printPalettes prints every group with at least minColors colors, sorted
// by name, followed by its color swatches.
func printPalettes(w io.Writer, groups palette.Groups, minColors int) {
	names := groups.Names()
	if minColors > 0 {
		names = groups.Eligible(minColors)
	}
	for _, name := range names {
		colors := groups[name]
		swatches := make([]string, len(colors))
		for i, c := range colors {
			swatches[i] = swatch(c)
		}
		fmt.Fprintf(w, "%s %s\n", StyleTitle.Render(name), StyleDim.Render(fmt.Sprintf("(%d)", len(colors))))
		fmt.Fprintln(w, "  "+strings.Join(swatches, " "))
	}
}
