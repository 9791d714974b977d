package report

import (
	"errors"
	"fmt"
	"time"

	"poppys-backend/internal/storage"
)

var ErrInvalidDateRange = errors.New("from date is after to date")

const dateLayout = "2006-01-02"

// Filter narrows a report to a date range and entity ids. An empty slice
// leaves that dimension unconstrained.
type Filter struct {
	From string
	To   string

	MachineIDs    []string
	LineNumbers   []string
	OperatorIDs   []string
	OperatorNames []string
}

// Validate checks the date range. An inverted range is rejected outright,
// never silently swapped.
func (f Filter) Validate() error {
	var from, to time.Time
	var err error

	if f.From != "" {
		if from, err = time.Parse(dateLayout, f.From); err != nil {
			return fmt.Errorf("invalid from date %q: %w", f.From, err)
		}
	}
	if f.To != "" {
		if to, err = time.Parse(dateLayout, f.To); err != nil {
			return fmt.Errorf("invalid to date %q: %w", f.To, err)
		}
	}
	if f.From != "" && f.To != "" && from.After(to) {
		return ErrInvalidDateRange
	}

	return nil
}

// Match reports whether a row passes every filter dimension. The date range
// is inclusive on both ends, so from == to selects a single day.
func (f Filter) Match(row storage.LogRow) bool {
	if f.From != "" && row.Date < f.From {
		return false
	}
	if f.To != "" && row.Date > f.To {
		return false
	}
	return matchAny(f.MachineIDs, row.MachineID) &&
		matchAny(f.LineNumbers, row.LineNumber) &&
		matchAny(f.OperatorIDs, row.OperatorID) &&
		matchAny(f.OperatorNames, row.OperatorName)
}

// Apply returns the rows that pass the filter. The input is never mutated.
func (f Filter) Apply(rows []storage.LogRow) []storage.LogRow {
	out := make([]storage.LogRow, 0, len(rows))
	for _, row := range rows {
		if f.Match(row) {
			out = append(out, row)
		}
	}
	return out
}

func matchAny(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
