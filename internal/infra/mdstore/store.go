package mdstore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/taskmd/internal/domain"
)

// Store implements domain.LedgerStore using a Markdown file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the ledger file under a shared lock.
// A missing file yields an empty ledger.
func (s *Store) Load() (*domain.Ledger, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	return s.read()
}

// Save encodes the ledger and replaces the file in full under an
// exclusive lock.
func (s *Store) Save(ledger *domain.Ledger) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return s.write(ledger)
}

// Update runs fn on the decoded ledger and persists the result, all
// under one exclusive lock, so concurrent callers cannot interleave
// their load-mutate-save cycles. If fn fails, the file is untouched.
func (s *Store) Update(fn func(*domain.Ledger) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	ledger, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(ledger); err != nil {
		return err
	}

	return s.write(ledger)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*domain.Ledger, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewLedger(nil), nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	return Decode(content), nil
}

func (s *Store) write(ledger *domain.Ledger) error {
	content := Encode(ledger)

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements LedgerStore.
var _ domain.LedgerStore = (*Store)(nil)
