package ingest

import "fmt"

// MaxReportedErrors bounds the skip reasons returned to the caller. The full
// list can be large for a bad sheet; the response only ever carries a sample.
const MaxReportedErrors = 10

// Outcome aggregates one upload: counts of created vs skipped rows plus a
// bounded list of human-readable skip reasons. It is returned to the caller
// and never persisted. Invariant: Created + Skipped equals the number of data
// rows considered.
type Outcome struct {
	Created int
	Skipped int
	errors  []string
}

// Skip drops one row, keeping at most MaxReportedErrors reasons.
func (o *Outcome) Skip(reason string) {
	o.Skipped++
	if len(o.errors) < MaxReportedErrors {
		o.errors = append(o.errors, reason)
	}
}

// Skipf is Skip with formatting.
func (o *Outcome) Skipf(format string, args ...interface{}) {
	o.Skip(fmt.Sprintf(format, args...))
}

// Errors returns the recorded skip reasons, capped at MaxReportedErrors.
func (o *Outcome) Errors() []string {
	return o.errors
}

// Total is the number of data rows considered, header/title rows excluded.
func (o *Outcome) Total() int {
	return o.Created + o.Skipped
}
