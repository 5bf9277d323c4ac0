// Package tui provides the interactive terminal UI for the task ledger.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/domain"
	"github.com/runoshun/taskmd/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
)

// Model is the task TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	tasks []domain.Task
	err   error

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	cursor   int
	width    int
	height   int
	prioIdx  int
	mode     Mode

	// Boolean state
	showDone bool
	loading  bool
}

// New creates a new task TUI model.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "Task description..."
	ai.CharLimit = 500

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		addInput:  ai,
		prioIdx:   1, // NORMAL
		loading:   true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks loads tasks from the ledger file.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			OnlyPending: !m.showDone,
		})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// addTask returns a command that appends a task.
func (m *Model) addTask(description string, priority domain.Priority) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Description: description,
			Priority:    string(priority),
		})
		if err != nil {
			return MsgTaskAdded{Err: err}
		}
		return MsgTaskAdded{Line: out.Line}
	}
}

// completeTask returns a command that completes the given task.
func (m *Model) completeTask(task domain.Task) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{
			Match: task.Description,
		})
		if err != nil {
			return MsgTaskCompleted{Err: err}
		}
		return MsgTaskCompleted{Line: out.Line}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		if m.cursor >= len(m.tasks) && m.cursor > 0 {
			m.cursor = len(m.tasks) - 1
		}
		return m, nil

	case MsgTaskAdded:
		if msg.Err != nil {
			m.err = msg.Err
		}
		m.mode = ModeNormal
		m.addInput.Reset()
		return m, m.loadTasks()

	case MsgTaskCompleted:
		if msg.Err != nil {
			m.err = msg.Err
		}
		return m, m.loadTasks()
	}

	return m, nil
}

// handleKey handles key events.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeAdd {
		return m.handleAddMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if len(m.tasks) > 0 && m.cursor < len(m.tasks) {
			task := m.tasks[m.cursor]
			if task.Completed {
				return m, nil
			}
			return m, m.completeTask(task)
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.addInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Toggle):
		m.showDone = !m.showDone
		m.loading = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadTasks()
	}

	return m, nil
}

// handleAddMode handles keys in add mode.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		description := m.addInput.Value()
		if strings.TrimSpace(description) == "" {
			m.mode = ModeNormal
			m.addInput.Reset()
			return m, nil
		}
		return m, m.addTask(description, m.addPriority())

	case "tab":
		m.prioIdx = (m.prioIdx + 1) % len(domain.AllPriorities())
		return m, nil

	case "esc":
		m.mode = ModeNormal
		m.addInput.Reset()
		return m, nil
	}

	// Handle input
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// addPriority returns the currently selected priority for a new task.
func (m *Model) addPriority() domain.Priority {
	return domain.AllPriorities()[m.prioIdx]
}

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("taskmd: " + m.container.Config.LedgerPath))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Normal.Render("No tasks."))
		b.WriteString("\n")
	default:
		for i, task := range m.tasks {
			b.WriteString(m.renderTask(i, task))
			b.WriteString("\n")
		}
	}

	if m.mode == ModeAdd {
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(fmt.Sprintf("Add [%s]: ", m.addPriority())))
		b.WriteString(m.addInput.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter: save  tab: priority  esc: cancel"))
	} else {
		b.WriteString(m.styles.Help.Render("x: complete  a: add  tab: show/hide completed  r: refresh  q: quit"))
	}

	return b.String()
}

// renderTask renders a single task row.
func (m *Model) renderTask(i int, task domain.Task) string {
	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}

	priority := string(task.Priority)
	switch task.Priority {
	case domain.PriorityHigh:
		priority = m.styles.PriorityHigh.Render(priority)
	case domain.PriorityLow:
		priority = m.styles.PriorityLow.Render(priority)
	}

	row := fmt.Sprintf("%s %s %s", box, priority, task.Description)

	style := m.styles.Normal
	if task.Completed {
		style = m.styles.Done
	}
	if i == m.cursor {
		style = m.styles.Selected
	}
	return style.Render(row)
}
