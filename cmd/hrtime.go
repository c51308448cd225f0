package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/asd-xiv/node-utils/hrtime"
	"github.com/spf13/cobra"
)

var hrtimeNanos bool

func init() {
	hrtimeCmd.Flags().BoolVar(&hrtimeNanos, "ns", false, "read arguments as integer nanoseconds")
}

// resetHrtimeState resets the hrtime command's global state for testing.
func resetHrtimeState() {
	hrtimeNanos = false
}

var hrtimeCmd = &cobra.Command{
	Use:   "hrtime <duration>...",
	Short: "Format durations the way the logger does",
	Long: `Formats each duration on its own line using the logger's rules:
minutes and seconds from one minute up, seconds with three decimals from
one second, whole milliseconds from 100ms and fractional milliseconds below.

Examples:
  nu hrtime 65s 1.234s 552.133us
  nu hrtime --ns 5405000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			d, err := parseDuration(arg)
			if err != nil {
				return err
			}
			if d < 0 {
				return fmt.Errorf("negative duration %q", arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hrtime.Format(hrtime.FromDuration(d)))
		}
		return nil
	},
}

func parseDuration(arg string) (time.Duration, error) {
	if hrtimeNanos {
		ns, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid nanoseconds %q: %w", arg, err)
		}
		return time.Duration(ns), nil
	}

	d, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", arg, err)
	}
	return d, nil
}
