package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/internal/configs"
)

var (
	initDirectory  string
	initNoTerminal bool
	initNoColor    bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the prizm configuration",
	Long: `Create the prizm user configuration with an install UUID and console defaults.

If a configuration already exists and no flags are given, nothing is changed.
Flags update the existing configuration in place.

Examples:
  prizm config init                        # Create with defaults
  prizm config init --directory ./logs/    # Set the default log directory
  prizm config init --no-color             # Disable colored output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		config, created, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to initialize config: %v", err)
		}

		flagsGiven := cmd.Flags().Changed("directory") || cmd.Flags().Changed("no-terminal") || cmd.Flags().Changed("no-color")

		var out strings.Builder

		if !created && !flagsGiven {
			// Already configured, no setup needed.
			out.WriteString(color.GreenString("✓") + " Configuration already exists at " + color.YellowString(configs.ConfigPath()) + "\n")
			out.WriteString(color.CyanString("→") + " View it with: " + color.YellowString("prizm config show"))
			cmd.Println(out.String())
			return nil
		}

		if flagsGiven {
			if cmd.Flags().Changed("directory") {
				config.Console.Directory = initDirectory
			}
			if cmd.Flags().Changed("no-terminal") {
				config.Console.Terminal = !initNoTerminal
			}
			if cmd.Flags().Changed("no-color") {
				config.Console.Color = !initNoColor
			}
			if err := configs.SaveUserConfig(config); err != nil {
				return Logger.ErrorfAndReturn("Failed to save config: %v", err)
			}
		}

		if created {
			out.WriteString(color.GreenString("✓") + " Created configuration at " + color.YellowString(configs.ConfigPath()) + "\n")
		} else {
			out.WriteString(color.GreenString("✓") + " Updated configuration at " + color.YellowString(configs.ConfigPath()) + "\n")
		}
		out.WriteString(color.CyanString("→") + " View it with: " + color.YellowString("prizm config show"))
		cmd.Println(out.String())
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&initDirectory, "directory", "", "default log directory for the console")
	configInitCmd.Flags().BoolVar(&initNoTerminal, "no-terminal", false, "disable terminal output by default")
	configInitCmd.Flags().BoolVar(&initNoColor, "no-color", false, "disable colored output by default")
}
