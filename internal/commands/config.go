package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/config"
)

var (
	setEndpointFlag  string
	setClipboardFlag string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show the current configuration, or change it with flags.

Examples:
  agentchat config
  agentchat config --set-endpoint http://localhost:9000
  agentchat config --set-clipboard on`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	configCmd.Flags().StringVar(&setEndpointFlag, "set-endpoint", "", "Set the agent API endpoint")
	configCmd.Flags().StringVar(&setClipboardFlag, "set-clipboard", "", "Copy one-shot results to clipboard (on/off)")
}

func runConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	changed := false

	if setEndpointFlag != "" {
		cfg.Endpoint = setEndpointFlag
		changed = true
	}

	if setClipboardFlag != "" {
		switch setClipboardFlag {
		case "on", "true":
			cfg.CopyToClipboard = true
		case "off", "false":
			cfg.CopyToClipboard = false
		default:
			return fmt.Errorf("invalid value %q for --set-clipboard (want on/off)", setClipboardFlag)
		}
		changed = true
	}

	if changed {
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	fmt.Println(dimStyle.Render("Config file: " + path))
	fmt.Printf("%s %s\n", keyStyle.Render("endpoint:"), cfg.Endpoint)
	fmt.Printf("%s %v\n", keyStyle.Render("copy_to_clipboard:"), cfg.CopyToClipboard)

	return nil
}
