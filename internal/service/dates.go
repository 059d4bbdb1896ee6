package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns midnight UTC of that day.
// An RFC3339 timestamp keeps the calendar day written in its own offset, so
// "2024-05-01T23:15:00-03:00" is May 1 even though it is May 2 in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, validationError("invalid date %q: expected YYYY-MM-DD", s)
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Month is a calendar month, as in "2024-05".
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, validationError("invalid month %q: expected YYYY-MM", s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay is midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return now.With(time.Date(m.Year, m.Month, 15, 12, 0, 0, 0, time.UTC)).BeginningOfMonth()
}

// Range returns [first day, first day of next month).
func (m Month) Range() (time.Time, time.Time) {
	from := m.FirstDay()
	return from, from.AddDate(0, 1, 0)
}

func (m Month) Contains(t time.Time) bool {
	from, to := m.Range()
	return !t.Before(from) && t.Before(to)
}
