package domain

// LedgerStore manages ledger persistence. Each mutating operation is a
// single load-mutate-save cycle; the ledger itself is process-transient.
type LedgerStore interface {
	// Load reads and decodes the ledger file. A missing file yields an
	// empty ledger, not an error.
	Load() (*Ledger, error)

	// Save encodes the ledger and atomically replaces the file in full.
	Save(ledger *Ledger) error

	// Update runs fn on the decoded ledger under an exclusive lock and
	// persists the result. If fn returns an error, nothing is written.
	Update(fn func(*Ledger) error) error

	// Path returns the ledger file path.
	Path() string
}

// ConfigLoader loads the merged application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}
