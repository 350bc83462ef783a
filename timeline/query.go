package timeline

import (
	"fmt"
	"sort"
	"time"
)

// At returns the value defined at instant t. Intervals are half-open: at an
// exact boundary the value of the segment starting at t is returned, never
// the one ending there. It fails with ErrOutOfRange if t is before the
// timeline's start or at or after its end.
func (tl *Timeline[T]) At(t time.Time) (T, error) {
	if t.Before(tl.Start()) || !t.Before(tl.End()) {
		var zero T
		return zero, fmt.Errorf("%w: %s not in [%s, %s)",
			ErrOutOfRange, fmtTime(t), fmtTime(tl.Start()), fmtTime(tl.End()))
	}
	return tl.segments[tl.search(t)].Value, nil
}

// search returns the index of the segment containing t. The instant must be
// within the timeline's total duration.
func (tl *Timeline[T]) search(t time.Time) int {
	// The containing segment is the first one whose end is after t.
	return sort.Search(len(tl.segments), func(i int) bool {
		return t.Before(tl.segments[i].End)
	})
}

// Slice returns the sub-timeline covering exactly [start, end). It fails with
// ErrRange unless start is before end and the requested range is a subset of
// the timeline's total duration. The first and last overlapped segments are
// truncated to the requested boundaries; interior segments pass through
// unchanged.
func (tl *Timeline[T]) Slice(start, end time.Time) (*Timeline[T], error) {
	if !start.Before(end) || start.Before(tl.Start()) || end.After(tl.End()) {
		return nil, fmt.Errorf("%w: [%s, %s) not within [%s, %s)",
			ErrRange, fmtTime(start), fmtTime(end), fmtTime(tl.Start()), fmtTime(tl.End()))
	}
	lo := tl.search(start)
	// Last overlapped segment: the first one whose end is at or after end.
	hi := sort.Search(len(tl.segments), func(i int) bool {
		return !tl.segments[i].End.Before(end)
	})
	segs := make([]Segment[T], hi-lo+1)
	copy(segs, tl.segments[lo:hi+1])
	segs[0].Start = start
	segs[len(segs)-1].End = end
	return &Timeline[T]{segments: segs}, nil
}
