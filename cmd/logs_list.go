package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/internal/logfiles"
)

var listCompact bool

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all log files in the log directory",
	Long: `Display the timestamped log files in the log directory, oldest first.

Shows each file's name, age, size, and record count. Files that don't match
the <unix-ms>.log naming scheme are ignored.

Examples:
  prizm logs list                       # Show all log files
  prizm logs list --compact             # Show just the file names
  prizm logs list --directory ./tmp/    # Use a different directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting logs list command")
		spinner, cleanup := startSpinner("Scanning log directory...", verbose)
		defer cleanup()

		dir := resolveDirectory()
		Logger.Debugf("Listing log files in %s", dir)
		files, err := logfiles.List(dir)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to list log files: %v", err)
		}

		var finalMessage strings.Builder

		if len(files) == 0 {
			finalMessage.WriteString(color.YellowString("!") + " No log files found in " + color.YellowString(dir) + "\n")
			finalMessage.WriteString(color.CyanString("→") + " Log files are created when a console writes its first record")
		} else {
			if listCompact {
				finalMessage.WriteString(color.GreenString("✓") + " Log files in " + color.YellowString(dir) + ":\n")
				for _, file := range files {
					finalMessage.WriteString(color.CyanString("  • ") + file.Name() + "\n")
				}
			} else {
				finalMessage.WriteString(color.GreenString("✓") + fmt.Sprintf(" %d log file(s) in ", len(files)) + color.YellowString(dir) + ":\n\n")
				for i, file := range files {
					finalMessage.WriteString(color.CyanString("  ") + color.YellowString(file.Name()) + "\n")
					finalMessage.WriteString(color.CyanString("    Created: ") + file.Timestamp.Format(time.RFC3339) + formatAge(file.Timestamp) + "\n")

					records := "unreadable"
					if lines, err := logfiles.ReadLines(file.Path); err == nil {
						records = fmt.Sprintf("%d", len(lines))
					}
					finalMessage.WriteString(color.CyanString("    Records: ") + records + fmt.Sprintf(", %d bytes", file.Size) + "\n")

					if i < len(files)-1 {
						finalMessage.WriteString("\n")
					}
				}
			}

			finalMessage.WriteString("\n" + color.CyanString("→") + " Show a file with: " + color.YellowString("prizm logs show <name>") + "\n")
			finalMessage.WriteString(color.CyanString("→") + " Prune old files with: " + color.YellowString("prizm logs clean"))
		}

		spinner.FinalMSG = finalMessage.String()
		return nil
	},
}

// formatAge renders a file age suffix like " (3h ago)". Empty for files from
// the future, which can happen when clocks move backwards.
func formatAge(ts time.Time) string {
	age := time.Since(ts)
	if age < 0 {
		return ""
	}
	return " (" + age.Round(time.Second).String() + " ago)"
}

func init() {
	logsListCmd.Flags().BoolVar(&listCompact, "compact", false, "show compact format with just file names")
}
