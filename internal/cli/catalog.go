package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlock/pkg/core/mode"
	"github.com/matzehuels/gridlock/pkg/core/palette"
)

// themesCommand lists the color themes in cycle order.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := c.Config.PaletteThemes()
			if err != nil {
				return err
			}
			rows := themeRows(themes)
			current := palette.Find(themes, c.Config.Theme)
			fmt.Println(newTable([]string{"#", "Theme", "Colors", "Swatch"}, rows, func(row int) bool {
				return row == current
			}).Render())
			printDetail("%d themes · %s is configured · 'd' cycles them in the studio", len(themes), c.Config.Theme)
			return nil
		},
	}
}

// themeRows renders one row per theme.
func themeRows(themes []palette.Theme) [][]string {
	rows := make([][]string, len(themes))
	for i, t := range themes {
		rows[i] = []string{strconv.Itoa(i + 1), t.Name, strconv.Itoa(len(t.Colors)), swatch(t.Hexes())}
	}
	return rows
}

// modesCommand lists the registered modes, including config overrides.
func (c *CLI) modesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List drawing modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.Config.Registry()
			if err != nil {
				return err
			}
			modes := reg.Modes()
			current := slices.IndexFunc(modes, func(m mode.Mode) bool { return m.Name == c.Config.Mode })
			fmt.Println(newTable([]string{"Mode", "Family", "Shapes", "Lattice", "Source"},
				modeRows(modes, c.Config.ModeOverrides), func(row int) bool {
					return row == current
				}).Render())
			printDetail("%d modes · %s is configured · 'm' cycles them in the studio", len(modes), c.Config.Mode)
			return nil
		},
	}
}

// modeRows renders one row per mode. Modes defined or changed by the
// configuration are marked "config".
func modeRows(modes []mode.Mode, overrides []mode.Mode) [][]string {
	rows := make([][]string, len(modes))
	for i, m := range modes {
		source := "built-in"
		if slices.ContainsFunc(overrides, func(o mode.Mode) bool { return o.Name == m.Name }) {
			source = "config"
		}
		rows[i] = []string{
			m.Name,
			string(m.Family),
			strconv.Itoa(m.MaxShapes),
			"1/" + strconv.FormatFloat(m.LatticeDivisor, 'f', -1, 64),
			source,
		}
	}
	return rows
}
