package cmd

import (
	logger "github.com/prizmlabs/prizm/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	LogsCmd = &cobra.Command{
		Use:   "logs",
		Short: "Inspect log files written by the console",
		Long:  `Provides listing, display, and pruning of the timestamped log files written by the prizm console.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing logs command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	LogsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	LogsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	addDirectoryFlag(LogsCmd.PersistentFlags())

	LogsCmd.AddCommand(logsListCmd)
	LogsCmd.AddCommand(logsShowCmd)
	LogsCmd.AddCommand(logsCleanCmd)
}

// Helper functions for testing

// GetLogsCmd returns the LogsCmd for testing.
func GetLogsCmd() *cobra.Command {
	return LogsCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	logDirectory = ""
	listCompact = false
	showLatest = false
	cleanKeep = defaultKeep
	cleanDryRun = false
	initDirectory = ""
	initNoTerminal = false
	initNoColor = false
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
