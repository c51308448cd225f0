package cmd

import (
	"fmt"
	"strconv"

	"github.com/asd-xiv/node-utils/mathutil"
	"github.com/spf13/cobra"
)

var truncateDecimals int

func init() {
	truncateCmd.Flags().IntVarP(&truncateDecimals, "decimals", "p", 0, "decimal places to keep")
}

// resetTruncateState resets the truncate command's global state for testing.
func resetTruncateState() {
	truncateDecimals = 0
}

var truncateCmd = &cobra.Command{
	Use:   "truncate <number>...",
	Short: "Truncate numbers toward zero",
	Long: `Truncates each number to the given decimal places, never rounding.

Examples:
  nu truncate 10.999          # 10
  nu truncate -p 2 10.999     # 10.99`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", arg, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(mathutil.Truncate(x, truncateDecimals), 'f', -1, 64))
		}
		return nil
	},
}
