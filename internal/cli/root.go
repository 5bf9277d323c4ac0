// Package cli provides the command-line interface for taskmd.
package cli

import (
	"github.com/runoshun/taskmd/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupAgent = "agent"
)

// NewRootCommand creates the root command for taskmd.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmd",
		Short: "Task tracking over a single TODO.md file",
		Long: `taskmd keeps an ordered task ledger in a plain Markdown file
(TODO.md at the workspace root). Each task is one line:

  - [ ] [NORMAL] description
  - [x] [HIGH] completed task

Tasks are only ever appended and completed; the file stays human-editable
and safe to keep under version control.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupAgent, Title: "Agent Integration:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask
	root.AddCommand(addCmd)

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask
	root.AddCommand(listCmd)

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask
	root.AddCommand(doneCmd)

	tuiCmd := newTuiCommand(c)
	tuiCmd.GroupID = groupTask
	root.AddCommand(tuiCmd)

	serveCmd := newServeCommand(c, version)
	serveCmd.GroupID = groupAgent
	root.AddCommand(serveCmd)

	return root
}
