package sqlconfig

import (
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Update when no row matched the user and id.
var ErrNotFound = errors.New("record not found")

// ErrEmptyUpdate is returned by Update when the patch sets no column.
var ErrEmptyUpdate = errors.New("update sets no columns")

// DateRange bounds a listing by calendar date, From inclusive and To exclusive.
// Zero values leave that side open.
type DateRange struct {
	From time.Time
	To   time.Time
}
