package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "prizm",
	Short: "Prizm - color-coded console output with timestamped file logging.",
	Long: `Prizm is a console toolkit: a Go library that prints color-coded messages
to the terminal while appending plain-text copies to timestamped log files,
plus this CLI for working with the files it writes.

Usage:
  prizm <command> [flags]

Available Commands:
  logs       Inspect and prune log files
  colors     Render the supported color palette
  config     Manage the prizm configuration

Run 'prizm help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("Prizm", "", "cyan", true).Print()
		fmt.Println("Run 'prizm --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.LogsCmd)
	rootCmd.AddCommand(cmd.ColorsCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
