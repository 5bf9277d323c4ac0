package cli

import (
	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/toolserver"
	"github.com/spf13/cobra"
)

// newServeCommand creates the serve command for the agent tool server.
func newServeCommand(c *app.Container, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tool server for agent runtimes",
		Long: `Run a JSON-RPC 2.0 tool server on stdin/stdout.

The server exposes three tools to an agent runtime:

  add_task       {task, priority}       append a task
  list_tasks     {only_pending}         list tasks in ledger order
  complete_task  {task_content}         mark the first match as completed

Arguments are validated against per-tool JSON Schemas before any file
access. The server exits on EOF.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := toolserver.NewServer(c, cmd.InOrStdin(), cmd.OutOrStdout(), version)
			return srv.Run(cmd.Context())
		},
	}

	return cmd
}
