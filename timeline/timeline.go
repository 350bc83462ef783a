package timeline

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// A Segment holds a constant value over the half-open time interval
// [Start, End). A segment is valid if Start is strictly before End.
type Segment[T any] struct {
	Start time.Time
	End   time.Time
	Value T
}

// A Timeline represents a value of type T as it changes over a continuous
// period. It behaves like a step function: the value remains constant for a
// segment of time and then instantly changes to a new value at the start of
// the next segment. The zero value is not usable; use one of the From
// constructors.
type Timeline[T any] struct {
	segments []Segment[T]
}

// FromSegments creates a Timeline from segments, which may be supplied in any
// order. Segments are sorted by start time and validated: the result must be
// a non-empty, contiguous, non-overlapping sequence of valid segments, and
// any violation is reported with the offending index and boundaries.
func FromSegments[T any](segments []Segment[T]) (*Timeline[T], error) {
	segs := sortedByStart(segments)
	if err := validate(segs); err != nil {
		return nil, err
	}
	return &Timeline[T]{segments: segs}, nil
}

// FromSegmentsWithGaps creates a Timeline from segments that may leave gaps
// between one another. Segments are sorted by start time and every gap
// between two consecutive segments is bridged with a synthetic segment
// holding gapValue. Only interior gaps are filled; nothing is inferred before
// the first or after the last segment. The result is validated like in
// FromSegments, so only empty, degenerate or overlapping input can still
// fail.
func FromSegmentsWithGaps[T any](segments []Segment[T], gapValue T) (*Timeline[T], error) {
	segs := sortedByStart(segments)
	filled := make([]Segment[T], 0, len(segs))
	for _, s := range segs {
		if n := len(filled); n > 0 && filled[n-1].End.Before(s.Start) {
			filled = append(filled, Segment[T]{Start: filled[n-1].End, End: s.Start, Value: gapValue})
		}
		filled = append(filled, s)
	}
	if err := validate(filled); err != nil {
		return nil, err
	}
	return &Timeline[T]{segments: filled}, nil
}

// sortedByStart returns a copy of segments stably sorted by start time.
func sortedByStart[T any](segments []Segment[T]) []Segment[T] {
	segs := make([]Segment[T], len(segments))
	copy(segs, segments)
	slices.SortStableFunc(segs, func(a, b Segment[T]) int {
		return a.Start.Compare(b.Start)
	})
	return segs
}

// Start returns the inclusive start of the timeline's total duration.
func (tl *Timeline[T]) Start() time.Time {
	return tl.segments[0].Start
}

// End returns the exclusive end of the timeline's total duration.
func (tl *Timeline[T]) End() time.Time {
	return tl.segments[len(tl.segments)-1].End
}

// Span returns the timeline's total duration [start, end).
func (tl *Timeline[T]) Span() (start, end time.Time) {
	return tl.Start(), tl.End()
}

// Len returns the number of segments in the timeline.
func (tl *Timeline[T]) Len() int {
	return len(tl.segments)
}

// Segments returns a copy of the timeline's segments in order. Modifying the
// returned slice does not affect the timeline.
func (tl *Timeline[T]) Segments() []Segment[T] {
	segs := make([]Segment[T], len(tl.segments))
	copy(segs, tl.segments)
	return segs
}

// All returns an iterator over the timeline's segments in order. The iterator
// can be ranged over any number of times.
func (tl *Timeline[T]) All() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		for _, s := range tl.segments {
			if !yield(s) {
				return
			}
		}
	}
}

// EqualFunc reports whether tl and other consist of the same segments, using
// eq to compare values. Boundaries are compared as instants.
func (tl *Timeline[T]) EqualFunc(other *Timeline[T], eq func(a, b T) bool) bool {
	if len(tl.segments) != len(other.segments) {
		return false
	}
	for i, s := range tl.segments {
		o := other.segments[i]
		if !s.Start.Equal(o.Start) || !s.End.Equal(o.End) || !eq(s.Value, o.Value) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b consist of the same segments, comparing
// values with ==.
func Equal[T comparable](a, b *Timeline[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String returns a compact textual representation of the timeline.
func (tl *Timeline[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range tl.segments {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s..%s=%v", fmtTime(s.Start), fmtTime(s.End), s.Value)
	}
	b.WriteByte(']')
	return b.String()
}
