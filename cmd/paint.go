package cmd

import (
	"fmt"
	"strings"

	"github.com/asd-xiv/node-utils/colors"
	"github.com/spf13/cobra"
)

var (
	paintStyles []string
	paintForce  bool
)

func init() {
	paintCmd.Flags().StringSliceVarP(&paintStyles, "style", "s", nil, "styles to apply, in order (e.g. red,bold)")
	paintCmd.Flags().BoolVarP(&paintForce, "force", "f", false, "style even when CI or NO_COLOR is set")
}

// resetPaintState resets the paint command's global state for testing.
func resetPaintState() {
	paintStyles = nil
	paintForce = false
}

var paintCmd = &cobra.Command{
	Use:   "paint <text>...",
	Short: "Style text with ANSI markers",
	Long: `Wraps the text in the given styles followed by a single reset.

Styles: reset, bold, dim, italic, underline, and the colors black, gray,
red, green, yellow, blue, magenta, cyan, white (foreground, also as fgRed)
and bgBlack ... bgWhite (background).

Examples:
  nu paint -s yellow,bold "Warning!"
  nu paint -s red -s underline -s bold Error`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := make([]colors.Style, 0, len(paintStyles))
		for _, name := range paintStyles {
			s, ok := colors.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown style %q", name)
			}
			styles = append(styles, s)
		}

		text := strings.Join(args, " ")
		if paintForce || colors.Enabled() {
			text = colors.Apply(styles, text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
