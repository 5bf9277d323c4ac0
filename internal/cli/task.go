package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/domain"
	"github.com/runoshun/taskmd/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newAddCommand creates the add command for appending tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Priority string
	}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Long: `Append a task to the end of the ledger.

The task is created pending. The ledger file is created on first add
if it does not exist yet.

Examples:
  # Add a task with default priority (NORMAL)
  taskmd add "Write release notes"

  # Add a high-priority task
  taskmd add "Fix login bug" --priority HIGH
  taskmd add "Fix login bug" -p HIGH`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Description: strings.Join(args, " "),
				Priority:    opts.Priority,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", out.Line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Task priority: LOW, NORMAL, HIGH (default: NORMAL)")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		All    bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in ledger order.

By default, completed tasks are hidden. Use --all to show every task.

Examples:
  # List pending tasks
  taskmd list

  # List all tasks including completed
  taskmd list --all
  taskmd list -a

  # Machine-readable output
  taskmd list --output json
  taskmd list -a -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				OnlyPending: !opts.All,
			})
			if err != nil {
				return err
			}

			switch opts.Output {
			case "", "text":
				printTaskList(cmd.OutOrStdout(), out.Tasks)
				return nil
			case "json":
				return printTasksJSON(cmd.OutOrStdout(), out.Tasks)
			case "yaml":
				return printTasksYAML(cmd.OutOrStdout(), out.Tasks)
			default:
				return fmt.Errorf("unknown output format %q (expected text, json, or yaml)", opts.Output)
			}
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all tasks including completed")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format: text, json, yaml")

	return cmd
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <text>",
		Short: "Mark a task as completed",
		Long: `Mark the first task whose description contains the given text
as completed. Matching is case-sensitive and positional: the earliest
matching line wins, even if it is already completed (in which case the
call is a no-op).

Examples:
  taskmd done "login bug"
  taskmd done docs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Match: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", out.Line)
			return nil
		},
	}

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "STATUS\tPRIORITY\tTASK")
	for _, task := range tasks {
		status := "pending"
		if task.Completed {
			status = "done"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", status, task.Priority, task.Description)
	}
}

// printTasksJSON prints tasks as a JSON array.
func printTasksJSON(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

// printTasksYAML prints tasks as a YAML sequence.
func printTasksYAML(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return yaml.NewEncoder(w).Encode(tasks)
}
