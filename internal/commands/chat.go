package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/agentchat/internal/agent"
	"github.com/diogo/agentchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the browser agent.

Each message is submitted as a task to the agent's run_task endpoint.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client := agent.NewClient(getEndpoint())

	// Fail fast when the agent server is not running
	spin := newSpinner("Connecting to agent")
	spin.start()
	if err := client.Ping(context.Background()); err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Agent unreachable"))
		return fmt.Errorf("failed to reach agent at %s: %w", client.Endpoint(), err)
	}
	spin.stopWithSuccess("Connected")

	return tui.RunChat(client)
}
