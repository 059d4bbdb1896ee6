// Package memory is a process-local store used for development and tests.
// Nothing survives a restart.
package memory

import (
	"time"

	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ErrDuplicateKey mirrors the primary key violation of the SQL tables.
var ErrDuplicateKey = errors.New("duplicate key")

func inRange(date time.Time, r sqlconfig.DateRange) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !date.Before(r.To) {
		return false
	}
	return true
}

// newerFirst orders like the SQL tables: date, created_at, id, all descending.
func newerFirst(dateA, dateB, createdA, createdB time.Time, idA, idB string) bool {
	if !dateA.Equal(dateB) {
		return dateA.After(dateB)
	}
	if !createdA.Equal(createdB) {
		return createdA.After(createdB)
	}
	return idA > idB
}
