package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prizmlabs/prizm/internal/configs"
	perrors "github.com/prizmlabs/prizm/internal/errors"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the prizm configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		config, err := configs.LoadUserConfig()
		if errors.Is(err, perrors.ErrConfigNotFound) {
			out := color.RedString("✗") + " No configuration found\n" +
				color.CyanString("→") + " Run " + color.YellowString("prizm config init") + " first"
			cmd.Println(out)
			return nil
		}
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load config: %v", err)
		}

		var out strings.Builder
		out.WriteString(color.GreenString("✓") + " Configuration at " + color.YellowString(configs.ConfigPath()) + ":\n\n")
		out.WriteString(color.CyanString("  Install UUID: ") + config.Install.UUID + "\n")
		out.WriteString(color.CyanString("  Created:      ") + config.Install.CreatedAt.Format("2006-01-02 15:04:05 MST") + "\n")
		out.WriteString(color.CyanString("  Directory:    ") + config.Console.Directory + "\n")
		out.WriteString(color.CyanString("  Terminal:     ") + fmt.Sprintf("%t", config.Console.Terminal) + "\n")
		out.WriteString(color.CyanString("  Color:        ") + fmt.Sprintf("%t", config.Console.Color))
		cmd.Println(out.String())
		return nil
	},
}
