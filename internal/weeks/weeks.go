// Package weeks provides the ISO-week helpers the huddle views key on.
package weeks

import (
	"fmt"
	"time"
)

// Ref identifies one huddle week.
type Ref struct {
	Year int
	Week int
}

// Current returns the week containing now. The clock is read once, at the
// call site, not cached.
func Current(now time.Time) Ref {
	year, week := now.ISOWeek()
	return Ref{Year: year, Week: week}
}

// Of returns the week containing t.
func Of(t time.Time) Ref {
	year, week := t.ISOWeek()
	return Ref{Year: year, Week: week}
}

// String renders the ISO form, e.g. "2026-W35".
func (r Ref) String() string {
	return fmt.Sprintf("%d-W%02d", r.Year, r.Week)
}

// Range returns the Monday start and the following Monday of the week,
// both at midnight UTC.
func (r Ref) Range() (start, end time.Time) {
	// Jan 4 is always in ISO week 1.
	jan4 := time.Date(r.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	_, w := jan4.ISOWeek()
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -sinceMonday)
	start = monday.AddDate(0, 0, (r.Week-w)*7)
	return start, start.AddDate(0, 0, 7)
}

// Contains reports whether t falls inside the week.
func (r Ref) Contains(t time.Time) bool {
	return Of(t.UTC()) == r
}
