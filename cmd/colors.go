package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/console"
	logger "github.com/prizmlabs/prizm/internal/logging"
	"github.com/prizmlabs/prizm/internal/utils"
)

// ColorsCmd renders the palette through a real console, so the run is also
// appended to a log file like any other console output.
var ColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Render the supported color palette",
	Long: `Print a sample line in each of the twelve supported colors.

The samples go through a real console, so they are also appended to a fresh
log file in the log directory.

Examples:
  prizm colors                          # Render the palette
  prizm colors --directory ./tmp/       # Log into a different directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}

		c, err := console.New(resolveDirectory(), utils.IsTerminal())
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to create console: %v", err)
		}

		for _, col := range console.Colors() {
			if err := c.OutColor(col, string(col), "the quick brown fox"); err != nil {
				return Logger.ErrorfAndReturn("Failed to render %s: %v", col, err)
			}
		}

		fmt.Println()
		fmt.Println(color.CyanString("→") + " Logged palette to " + color.YellowString(c.Path()))
		return nil
	},
}

func init() {
	addDirectoryFlag(ColorsCmd.Flags())
}
