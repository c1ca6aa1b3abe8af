// Package commands provides CLI commands for agentchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/config"
)

var (
	// Global flags
	endpointFlag string
	outputFlag   string
	fileFlag     string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "agentchat [task]",
	Short: "Terminal client for the browser agent API",
	Long: `agentchat is a terminal client for a local browser-automation agent.
It submits free-text tasks to the agent's run_task endpoint and shows
the result.

Examples:
  agentchat chat                         Start interactive chat
  agentchat "open example.com"           Run a single task
  agentchat -f task.txt                  Read task from file
  cat task.txt | agentchat               Read task from stdin
  agentchat "check the news" -o out.txt  Save result to file
  agentchat -e http://localhost:9000 chat`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("agentchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "",
		"Base URL of the agent API server (default http://localhost:8000)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save result to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read task from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getEndpoint returns the agent endpoint to use (from flag or config)
func getEndpoint() string {
	if endpointFlag != "" {
		return endpointFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().Endpoint
	}

	return cfg.Endpoint
}
