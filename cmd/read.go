package cmd

import (
	"github.com/asd-xiv/node-utils/internal/utils"
	"github.com/asd-xiv/node-utils/jsonfile"
	"github.com/asd-xiv/node-utils/logger"
	"github.com/spf13/cobra"
)

var readCompact bool

func init() {
	readCmd.Flags().BoolVar(&readCompact, "compact", false, "print without indentation")
}

// resetReadState resets the read command's global state for testing.
func resetReadState() {
	readCompact = false
}

var readCmd = &cobra.Command{
	Use:   "read <path|->",
	Short: "Read a JSON file (or stdin) and print it",
	Long: `Parses a JSON document and prints it back, reporting read and parse
failures separately. Use - to read piped data from stdin.

Examples:
  nu read package.json
  cat package.json | nu read -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			doc any
			err error
		)

		if args[0] == "-" {
			var data []byte
			data, err = utils.ReadStdin()
			if err != nil {
				return err
			}
			doc, err = jsonfile.Parse[any](data)
		} else {
			doc, err = jsonfile.Read[any](args[0])
		}
		if err != nil {
			Logger.Error("Failed to read JSON", logger.V("path", args[0]), logger.V("error", err))
			return err
		}
		Logger.Info("JSON read", logger.V("path", args[0]))

		return printJSON(cmd, doc, !readCompact)
	},
}
