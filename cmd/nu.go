package cmd

import (
	"fmt"

	"github.com/asd-xiv/node-utils/internal/configs"
	"github.com/asd-xiv/node-utils/logger"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configPath string
	namespace  string
	sinceLast  bool
	level      levelValue

	// Config is loaded before every command runs.
	Config *configs.Config
	// Logger writes diagnostics to the command's error stream.
	Logger *logger.Logger

	// NuCmd is the top-level command.
	NuCmd = &cobra.Command{
		Use:   "nu",
		Short: "nu - terminal and JSON utilities",
		Long: `nu exercises the node-utils packages from the shell.

Available Commands:
  fetch      Call a JSON API and print the response
  read       Read a JSON file (or stdin) and print it
  hrtime     Format durations the way the logger does
  truncate   Truncate numbers toward zero
  paint      Style text with ANSI markers
  config     Manage nu configuration

Run 'nu help <command>' for more details on a specific command.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), figure.NewFigure("nu", "", true).String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'nu --help' to see available commands.")
		},
	}
)

func init() {
	NuCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/node-utils/config.toml)")
	NuCmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", "", "namespace prefixed to log lines")
	NuCmd.PersistentFlags().VarP(&level, "level", "l", "minimum log level: error, warning or info")
	NuCmd.PersistentFlags().BoolVar(&sinceLast, "since-last", false, "annotate log lines with the time since the previous one")

	NuCmd.AddCommand(fetchCmd)
	NuCmd.AddCommand(readCmd)
	NuCmd.AddCommand(hrtimeCmd)
	NuCmd.AddCommand(truncateCmd)
	NuCmd.AddCommand(paintCmd)
	NuCmd.AddCommand(configCmd)
}

// Execute runs NuCmd with color-aware output streams.
func Execute() error {
	NuCmd.SetOut(color.Output)
	NuCmd.SetErr(color.Error)
	return NuCmd.Execute()
}

// setup loads configuration and builds Logger. Flags override the file.
func setup(cmd *cobra.Command, args []string) error {
	path, err := resolvedConfigPath()
	if err != nil {
		return err
	}

	config, unknown, err := configs.Load(path)
	if err != nil {
		return err
	}
	Config = config

	if cmd.Flags().Changed("namespace") {
		Config.Logger.Namespace = namespace
	}
	if level.set {
		Config.Logger.Level = string(level.level)
	}
	if cmd.Flags().Changed("since-last") {
		Config.Logger.SinceLast = sinceLast
	}

	opts := Config.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	Logger = logger.New(opts)

	for _, key := range unknown {
		Logger.Warn("Unknown config key", logger.V("key", key), logger.V("file", path))
	}
	Logger.Info("Configuration loaded", logger.V("file", path), logger.V("level", Logger.Level()))
	return nil
}

// levelValue is a pflag.Value accepting logger level names.
type levelValue struct {
	level logger.Level
	set   bool
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string { return string(v.level) }

func (v *levelValue) Set(s string) error {
	l, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	v.level = l
	v.set = true
	return nil
}

func (v *levelValue) Type() string { return "level" }

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	configPath = ""
	namespace = ""
	sinceLast = false
	level = levelValue{}
	Config = nil
	Logger = nil
	resetFetchState()
	resetReadState()
	resetHrtimeState()
	resetTruncateState()
	resetPaintState()
	resetConfigState()
	resetCobraFlagState()
}

// resetCobraFlagState resets the flag state for all commands to prevent test pollution.
func resetCobraFlagState() {
	var visit func(c *cobra.Command)
	visit = func(c *cobra.Command) {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
		for _, sub := range c.Commands() {
			visit(sub)
		}
	}
	visit(NuCmd)
}
