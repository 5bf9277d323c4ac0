package mdstore

import (
	"strings"
	"testing"

	"github.com/runoshun/taskmd/internal/domain"
)

func TestEncode(t *testing.T) {
	ledger := domain.NewLedger([]domain.Task{
		{Description: "Write docs", Priority: domain.PriorityHigh},
		{Description: "Ship release", Priority: domain.PriorityNormal, Completed: true},
	})

	got := string(Encode(ledger))
	want := "# TODO\n\n- [ ] [HIGH] Write docs\n- [x] [NORMAL] Ship release\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_EmptyLedger(t *testing.T) {
	got := string(Encode(domain.NewLedger(nil)))
	if got != "# TODO\n\n" {
		t.Errorf("Encode(empty) = %q, want header only", got)
	}
}

func TestDecode_SkipsNonTaskLines(t *testing.T) {
	raw := strings.Join([]string{
		"# TODO",
		"",
		"- [ ] [HIGH] Write docs",
		"some stray note a human left",
		"- [x] [LOW] Old chore",
		"",
	}, "\n")

	ledger := Decode([]byte(raw))
	if ledger.Len() != 2 {
		t.Fatalf("Decode() len = %d, want 2", ledger.Len())
	}
	tasks := ledger.Tasks()
	if tasks[0].Description != "Write docs" || tasks[0].Priority != domain.PriorityHigh || tasks[0].Completed {
		t.Errorf("task 0 = %+v", tasks[0])
	}
	if tasks[1].Description != "Old chore" || tasks[1].Priority != domain.PriorityLow || !tasks[1].Completed {
		t.Errorf("task 1 = %+v", tasks[1])
	}
}

func TestDecode_Empty(t *testing.T) {
	if got := Decode(nil).Len(); got != 0 {
		t.Errorf("Decode(nil) len = %d, want 0", got)
	}
	if got := Decode([]byte("")).Len(); got != 0 {
		t.Errorf("Decode(empty) len = %d, want 0", got)
	}
}

// Round-trip: decode(encode(L)) == L for any ledger with valid priorities.
func TestRoundTrip(t *testing.T) {
	original := domain.NewLedger([]domain.Task{
		{Description: "Buy milk", Priority: domain.PriorityNormal},
		{Description: "buy bread", Priority: domain.PriorityLow, Completed: true},
		{Description: "Review [draft] doc", Priority: domain.PriorityHigh},
	})

	decoded := Decode(Encode(original))
	if decoded.Len() != original.Len() {
		t.Fatalf("round-trip len = %d, want %d", decoded.Len(), original.Len())
	}
	for i, want := range original.Tasks() {
		if got := decoded.Tasks()[i]; got != want {
			t.Errorf("task %d = %+v, want %+v", i, got, want)
		}
	}
}

// Idempotent re-save: once decoded and re-encoded, further cycles are
// byte-identical.
func TestRoundTrip_Stable(t *testing.T) {
	raw := strings.Join([]string{
		"## my own header",
		"- [x] [URGENT] normalized to NORMAL",
		"- [ ] plain task",
		"- [ ] [HIGH] kept as is",
	}, "\n")

	first := Encode(Decode([]byte(raw)))
	second := Encode(Decode(first))
	if string(first) != string(second) {
		t.Errorf("second cycle = %q, want %q", second, first)
	}
}
