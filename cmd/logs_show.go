package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/internal/logfiles"
)

var showLatest bool

var logsShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the records of a log file",
	Long: `Print the records of one log file, identified by its base name.

With --latest (or no argument), shows the newest log file in the directory.

Examples:
  prizm logs show 1735689600000.log     # Show a specific file
  prizm logs show --latest              # Show the newest file
  prizm logs show                       # Same as --latest`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting logs show command")

		dir := resolveDirectory()

		var file logfiles.File
		var err error
		if len(args) == 1 && !showLatest {
			Logger.Debugf("Looking up %s in %s", args[0], dir)
			file, err = logfiles.Find(dir, args[0])
		} else {
			Logger.Debugf("Looking up latest log file in %s", dir)
			file, err = logfiles.Latest(dir)
		}
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to locate log file: %v", err)
		}

		lines, err := logfiles.ReadLines(file.Path)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read log file: %v", err)
		}

		var out strings.Builder
		out.WriteString(color.CyanString("── ") + color.YellowString(file.Name()) + color.CyanString(" ──") + "\n")
		for _, line := range lines {
			out.WriteString(line + "\n")
		}
		if len(lines) == 0 {
			out.WriteString(color.New(color.FgHiBlack).Sprint("(empty)") + "\n")
		}

		cmd.Print(out.String())
		return nil
	},
}

func init() {
	logsShowCmd.Flags().BoolVar(&showLatest, "latest", false, "show the newest log file")
}
