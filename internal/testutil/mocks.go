// Package testutil provides shared test doubles.
package testutil

import "github.com/runoshun/taskmd/internal/domain"

// MockLedgerStore is a test double for domain.LedgerStore backed by an
// in-memory ledger.
type MockLedgerStore struct {
	Ledger    *domain.Ledger
	LoadErr   error
	SaveErr   error
	SaveCalls int
	FilePath  string
}

// NewMockLedgerStore creates a MockLedgerStore with an empty ledger.
func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{
		Ledger:   domain.NewLedger(nil),
		FilePath: "TODO.md",
	}
}

// Load returns the in-memory ledger.
func (m *MockLedgerStore) Load() (*domain.Ledger, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Ledger, nil
}

// Save replaces the in-memory ledger.
func (m *MockLedgerStore) Save(ledger *domain.Ledger) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Ledger = ledger
	m.SaveCalls++
	return nil
}

// Update runs fn against the in-memory ledger.
func (m *MockLedgerStore) Update(fn func(*domain.Ledger) error) error {
	if m.LoadErr != nil {
		return m.LoadErr
	}
	if err := fn(m.Ledger); err != nil {
		return err
	}
	return m.Save(m.Ledger)
}

// Path returns the configured file path.
func (m *MockLedgerStore) Path() string {
	return m.FilePath
}

// Ensure MockLedgerStore implements LedgerStore.
var _ domain.LedgerStore = (*MockLedgerStore)(nil)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config != nil {
		return m.Config, nil
	}
	return domain.NewDefaultConfig(), nil
}

// Ensure MockConfigLoader implements ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)
