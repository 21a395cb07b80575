package domain

import "time"

// TimeRange represents a half-open time interval [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// BusyInterval is an opaque busy period reported by the calendar provider.
// Busy intervals may overlap each other.
type BusyInterval = TimeRange

// IsValid returns true if the range is well-formed (Start strictly before End)
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that merely touch at a boundary do not overlap:
// [09:00, 09:30) and [09:30, 10:00) are disjoint.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}
