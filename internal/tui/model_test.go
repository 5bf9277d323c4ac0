package tui

import (
	"log/slog"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskmd/internal/app"
	"github.com/runoshun/taskmd/internal/domain"
	"github.com/runoshun/taskmd/internal/testutil"
)

func newTestModel(store *testutil.MockLedgerStore) *Model {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	container := app.NewWithDeps(
		app.Config{LedgerPath: store.FilePath},
		store,
		&testutil.MockConfigLoader{},
		logger,
	)
	return New(container)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TasksLoaded(t *testing.T) {
	m := newTestModel(testutil.NewMockLedgerStore())

	updated, _ := m.Update(MsgTasksLoaded{Tasks: []domain.Task{
		{Description: "one", Priority: domain.PriorityNormal},
		{Description: "two", Priority: domain.PriorityHigh},
	}})
	model := updated.(*Model)

	assert.False(t, model.loading)
	require.Len(t, model.tasks, 2)
	assert.Contains(t, model.View(), "one")
}

func TestModel_CursorMovement(t *testing.T) {
	m := newTestModel(testutil.NewMockLedgerStore())
	updated, _ := m.Update(MsgTasksLoaded{Tasks: []domain.Task{
		{Description: "one", Priority: domain.PriorityNormal},
		{Description: "two", Priority: domain.PriorityNormal},
	}})
	m = updated.(*Model)

	// Down moves, and stops at the last task
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)
	updated, _ = m.Update(keyMsg("j"))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)

	// Up moves, and stops at the first task
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(*Model)
	assert.Equal(t, 0, m.cursor)
	updated, _ = m.Update(keyMsg("k"))
	m = updated.(*Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CompleteProducesCommand(t *testing.T) {
	store := testutil.NewMockLedgerStore()
	store.Ledger = domain.NewLedger([]domain.Task{
		{Description: "one", Priority: domain.PriorityNormal},
	})
	m := newTestModel(store)
	updated, _ := m.Update(MsgTasksLoaded{Tasks: store.Ledger.Tasks()})
	m = updated.(*Model)

	_, cmd := m.Update(keyMsg("x"))
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(MsgTaskCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Equal(t, "- [x] [NORMAL] one", completed.Line)
}

func TestModel_CompleteSkipsCompletedTask(t *testing.T) {
	m := newTestModel(testutil.NewMockLedgerStore())
	updated, _ := m.Update(MsgTasksLoaded{Tasks: []domain.Task{
		{Description: "one", Priority: domain.PriorityNormal, Completed: true},
	}})
	m = updated.(*Model)

	_, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)
}

func TestModel_AddMode(t *testing.T) {
	store := testutil.NewMockLedgerStore()
	m := newTestModel(store)
	updated, _ := m.Update(MsgTasksLoaded{})
	m = updated.(*Model)

	// 'a' enters add mode
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(*Model)
	assert.Equal(t, ModeAdd, m.mode)

	// Tab cycles the priority selector
	assert.Equal(t, domain.PriorityNormal, m.addPriority())
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*Model)
	assert.Equal(t, domain.PriorityHigh, m.addPriority())

	// Esc cancels back to normal mode
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*Model)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModel_AddMode_EnterWithBlankInputCancels(t *testing.T) {
	m := newTestModel(testutil.NewMockLedgerStore())
	updated, _ := m.Update(MsgTasksLoaded{})
	m = updated.(*Model)
	updated, _ = m.Update(keyMsg("a"))
	m = updated.(*Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, cmd)
}

func TestModel_ToggleShowDoneReloads(t *testing.T) {
	m := newTestModel(testutil.NewMockLedgerStore())
	updated, _ := m.Update(MsgTasksLoaded{})
	m = updated.(*Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.showDone)
	assert.NotNil(t, cmd)
}
