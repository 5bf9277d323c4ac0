// Package mdstore provides a Markdown file-based implementation of LedgerStore.
package mdstore

import (
	"strings"

	"github.com/runoshun/taskmd/internal/domain"
)

// Header is the ledger file header line.
const Header = "# TODO"

// Decode parses raw file content into a ledger. Non-task lines (the
// header, blanks, stray content) are skipped, not errors, so a
// human-edited file keeps decoding.
func Decode(data []byte) *domain.Ledger {
	var tasks []domain.Task
	for _, line := range strings.Split(string(data), "\n") {
		if task, ok := domain.ParseTaskLine(line); ok {
			tasks = append(tasks, task)
		}
	}
	return domain.NewLedger(tasks)
}

// Encode renders the ledger as file content: the header, a blank
// separator line, then one line per task in ledger order.
func Encode(ledger *domain.Ledger) []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")
	for _, t := range ledger.Tasks() {
		b.WriteString(t.Markdown())
		b.WriteString("\n")
	}
	return []byte(b.String())
}
