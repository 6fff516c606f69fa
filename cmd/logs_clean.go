package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/internal/logfiles"
)

const defaultKeep = 5

var (
	cleanKeep   int
	cleanDryRun bool
)

var logsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old log files, keeping the newest ones",
	Long: `Remove old log files from the log directory, keeping the newest --keep files.

Use --dry-run to preview what would be removed without deleting anything.

Examples:
  prizm logs clean                      # Keep the newest 5 files
  prizm logs clean --keep 10            # Keep the newest 10 files
  prizm logs clean --dry-run            # Preview only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting logs clean command")
		spinner, cleanup := startSpinner("Cleaning log directory...", verbose)
		defer cleanup()

		dir := resolveDirectory()
		Logger.Debugf("Cleaning %s, keeping %d files, dryRun=%t", dir, cleanKeep, cleanDryRun)

		files, err := logfiles.List(dir)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to list log files: %v", err)
		}

		candidates := logfiles.PruneCandidates(files, cleanKeep)

		var finalMessage strings.Builder

		if len(candidates) == 0 {
			finalMessage.WriteString(color.GreenString("✓") + fmt.Sprintf(" Nothing to remove — %d file(s) in ", len(files)) + color.YellowString(dir) + fmt.Sprintf(", keeping up to %d", cleanKeep))
			spinner.FinalMSG = finalMessage.String()
			return nil
		}

		if cleanDryRun {
			finalMessage.WriteString(color.YellowString("[dry-run]") + fmt.Sprintf(" Would remove %d log file(s):\n", len(candidates)))
			for _, file := range candidates {
				finalMessage.WriteString(color.CyanString("  • ") + file.Name() + "\n")
			}
			finalMessage.WriteString(color.CyanString("→") + " Run without " + color.YellowString("--dry-run") + " to delete them")
			spinner.FinalMSG = finalMessage.String()
			return nil
		}

		removed, err := logfiles.Prune(dir, cleanKeep)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to remove log files: %v", err)
		}

		finalMessage.WriteString(color.GreenString("✓") + fmt.Sprintf(" Removed %d log file(s) from ", len(removed)) + color.YellowString(dir) + "\n")
		for _, path := range removed {
			finalMessage.WriteString(color.CyanString("  • ") + filepath.Base(path) + "\n")
		}
		finalMessage.WriteString(color.CyanString("→") + fmt.Sprintf(" Kept the newest %d file(s)", cleanKeep))

		spinner.FinalMSG = finalMessage.String()
		return nil
	},
}

func init() {
	logsCleanCmd.Flags().IntVar(&cleanKeep, "keep", defaultKeep, "number of newest log files to keep")
	logsCleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "preview removals without deleting anything")
}
