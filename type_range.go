package cashbook

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of calendar days.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Day returns the single-day range containing d.
func Day(d Date) Range { return Range{From: d, To: d} }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsDay reports whether the range covers exactly one calendar day.
func (r Range) IsDay() bool { return r.From == r.To }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Label names the range the way summaries display it: a single day is its
// YYYY-MM-DD key, anything longer is "from to to".
func (r Range) Label() string {
	if r.IsDay() {
		return r.From.String()
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}
