package mdstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskmd/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "TODO.md"))
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Load() of missing file len = %d, want 0", ledger.Len())
	}

	// Loading must not create the file
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Load() must not create the ledger file")
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	ledger := domain.NewLedger(nil)
	if _, err := ledger.Add("Write docs", domain.PriorityHigh); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Save(ledger); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	want := "# TODO\n\n- [ ] [HIGH] Write docs\n"
	if string(content) != want {
		t.Errorf("file content = %q, want %q", content, want)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Load() len = %d, want 1", loaded.Len())
	}
	if got := loaded.Tasks()[0]; got != ledger.Tasks()[0] {
		t.Errorf("loaded task = %+v, want %+v", got, ledger.Tasks()[0])
	}
}

func TestStore_Save_ReplacesInFull(t *testing.T) {
	store := newTestStore(t)

	// Seed the file with stray content
	if err := os.WriteFile(store.Path(), []byte("old content\nwith junk\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	ledger := domain.NewLedger([]domain.Task{{Description: "fresh", Priority: domain.PriorityNormal}})
	if err := store.Save(ledger); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	content, _ := os.ReadFile(store.Path())
	if string(content) != "# TODO\n\n- [ ] [NORMAL] fresh\n" {
		t.Errorf("file content = %q, want full replacement", content)
	}
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(l *domain.Ledger) error {
		_, err := l.Add("first", domain.PriorityNormal)
		return err
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	err = store.Update(func(l *domain.Ledger) error {
		_, err := l.Complete("first")
		return err
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 1 || !loaded.Tasks()[0].Completed {
		t.Errorf("after updates got %+v", loaded.Tasks())
	}
}

func TestStore_Update_FailureLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(domain.NewLedger([]domain.Task{{Description: "keep me", Priority: domain.PriorityNormal}})); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	before, _ := os.ReadFile(store.Path())

	wantErr := errors.New("boom")
	err := store.Update(func(*domain.Ledger) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("Update() error = %v, want %v", err, wantErr)
	}

	after, _ := os.ReadFile(store.Path())
	if string(before) != string(after) {
		t.Errorf("file changed after failed update: %q -> %q", before, after)
	}
}

func TestStore_Update_NotFoundLeavesMissingFileAbsent(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(l *domain.Ledger) error {
		_, err := l.Complete("anything")
		return err
	})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("Update() error = %v, want ErrTaskNotFound", err)
	}

	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("failed update must not create the ledger file")
	}
}

func TestStore_EndToEnd(t *testing.T) {
	store := newTestStore(t)

	// add_task({task:"Write docs", priority:"HIGH"})
	err := store.Update(func(l *domain.Ledger) error {
		_, err := l.Add("Write docs", domain.PriorityHigh)
		return err
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	content, _ := os.ReadFile(store.Path())
	if string(content) != "# TODO\n\n- [ ] [HIGH] Write docs\n" {
		t.Fatalf("after add, file = %q", content)
	}

	// complete_task({task_content:"docs"})
	err = store.Update(func(l *domain.Ledger) error {
		_, err := l.Complete("docs")
		return err
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	content, _ = os.ReadFile(store.Path())
	if string(content) != "# TODO\n\n- [x] [HIGH] Write docs\n" {
		t.Fatalf("after complete, file = %q", content)
	}

	// list_tasks
	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ledger.List(true)) != 0 {
		t.Error("pending list should be empty")
	}
	if len(ledger.List(false)) != 1 {
		t.Error("full list should have the completed task")
	}
}
