package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/usecase"
)

// Tool argument schemas. Arguments are validated against these before
// dispatch so malformed agent calls are rejected without touching the file.
const (
	addTaskSchema = `{
		"type": "object",
		"properties": {
			"task": {
				"type": "string",
				"description": "Task description",
				"minLength": 1
			},
			"priority": {
				"type": "string",
				"description": "Task priority (default: NORMAL)",
				"enum": ["LOW", "NORMAL", "HIGH"]
			}
		},
		"required": ["task"]
	}`

	listTasksSchema = `{
		"type": "object",
		"properties": {
			"only_pending": {
				"type": "boolean",
				"description": "Show only pending tasks (default: true)"
			}
		}
	}`

	completeTaskSchema = `{
		"type": "object",
		"properties": {
			"task_content": {
				"type": "string",
				"description": "Task content or substring to match",
				"minLength": 1
			}
		},
		"required": ["task_content"]
	}`
)

// toolDefinitions returns the tool descriptors for tools/list.
func toolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "add_task",
			Description: "Add a task to the TODO file in the workspace root.",
			InputSchema: json.RawMessage(addTaskSchema),
		},
		{
			Name:        "list_tasks",
			Description: "List tasks from the TODO file in the workspace root.",
			InputSchema: json.RawMessage(listTasksSchema),
		},
		{
			Name:        "complete_task",
			Description: "Mark a task as completed in the TODO file.",
			InputSchema: json.RawMessage(completeTaskSchema),
		},
	}
}

// Handler validates and dispatches tool calls.
type Handler struct {
	container *app.Container
	schemas   map[string]*jsonschema.Schema
}

// NewHandler creates a new tool call handler.
func NewHandler(c *app.Container) *Handler {
	return &Handler{
		container: c,
		schemas: map[string]*jsonschema.Schema{
			"add_task":      jsonschema.MustCompileString("add_task.json", addTaskSchema),
			"list_tasks":    jsonschema.MustCompileString("list_tasks.json", listTasksSchema),
			"complete_task": jsonschema.MustCompileString("complete_task.json", completeTaskSchema),
		},
	}
}

// Handle dispatches a tool call to the appropriate handler.
func (h *Handler) Handle(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	schema, ok := h.schemas[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	if err := schema.Validate(normalize(args)); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	switch name {
	case "add_task":
		return h.handleAddTask(ctx, args)
	case "list_tasks":
		return h.handleListTasks(ctx, args)
	case "complete_task":
		return h.handleCompleteTask(ctx, args)
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

func (h *Handler) handleAddTask(ctx context.Context, args map[string]interface{}) (string, error) {
	task, _ := args["task"].(string)
	priority, _ := args["priority"].(string)

	out, err := h.container.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{
		Description: task,
		Priority:    priority,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Task added: %s", out.Line), nil
}

func (h *Handler) handleListTasks(ctx context.Context, args map[string]interface{}) (string, error) {
	onlyPending := true
	if v, ok := args["only_pending"].(bool); ok {
		onlyPending = v
	}

	out, err := h.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{
		OnlyPending: onlyPending,
	})
	if err != nil {
		return "", err
	}

	if len(out.Tasks) == 0 {
		if onlyPending {
			return "No pending tasks found.", nil
		}
		return "No tasks found.", nil
	}

	lines := make([]string, 0, len(out.Tasks)+1)
	if onlyPending {
		lines = append(lines, "Pending tasks:")
	} else {
		lines = append(lines, "All tasks:")
	}
	for _, t := range out.Tasks {
		lines = append(lines, t.Markdown())
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) handleCompleteTask(ctx context.Context, args map[string]interface{}) (string, error) {
	match, _ := args["task_content"].(string)

	out, err := h.container.CompleteTaskUseCase().Execute(ctx, usecase.CompleteTaskInput{
		Match: match,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Task marked as completed: %s", out.Line), nil
}

// normalize round-trips args through JSON so numeric and nested values
// take the shapes the schema validator expects.
func normalize(args map[string]interface{}) interface{} {
	data, err := json.Marshal(args)
	if err != nil {
		return args
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return args
	}
	return v
}
