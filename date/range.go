package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains reports whether the date falls in the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String formats the range as "YYYY-MM-DD to YYYY-MM-DD".
func (r Range) String() string { return r.From.String() + " to " + r.To.String() }
