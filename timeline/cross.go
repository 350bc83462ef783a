package timeline

import (
	"fmt"
	"time"
)

// A Pair holds the values of two crossed timelines over one segment.
type Pair[A, B any] struct {
	First  A
	Second B
}

// span is a timeline's total duration [start, end).
type span struct {
	start time.Time
	end   time.Time
}

// checkSpans verifies that all spans denote the same duration. The first span
// is the reference; a mismatch names the offending timeline and both
// durations.
func checkSpans(spans []span) error {
	if len(spans) == 0 {
		return ErrNoTimelines
	}
	want := spans[0]
	for i, s := range spans[1:] {
		if !s.start.Equal(want.start) || !s.end.Equal(want.end) {
			return fmt.Errorf("%w: timeline %d covers [%s, %s), want [%s, %s)",
				ErrDurationMismatch, i+1,
				fmtTime(s.start), fmtTime(s.end), fmtTime(want.start), fmtTime(want.end))
		}
	}
	return nil
}

// CrossProduct aligns timelines covering an identical total duration into one
// composite timeline. The output has a boundary at every instant where any
// input changes value and nowhere else, making it the coarsest common
// refinement of all inputs. Each output value is a slice with one element per
// input timeline, in input order; for a single input the result carries
// one-element slices.
//
// It fails with ErrNoTimelines if timelines is empty and with
// ErrDurationMismatch if the inputs do not cover the same duration. The
// algorithm advances one cursor per input in lockstep over the union of their
// boundaries, visiting every input segment exactly once. Cursors whose
// segments end at the same instant advance together, so no zero-width
// segments are ever produced.
func CrossProduct[T any](timelines []*Timeline[T]) (*Timeline[[]T], error) {
	spans := make([]span, len(timelines))
	total := 0
	for i, tl := range timelines {
		spans[i] = span{start: tl.Start(), end: tl.End()}
		total += tl.Len()
	}
	if err := checkSpans(spans); err != nil {
		return nil, err
	}

	n := len(timelines)
	cursors := make([]int, n)
	segs := make([]Segment[[]T], 0, total-n+1)
	start := timelines[0].Start()
	globalEnd := timelines[0].End()

	for start.Before(globalEnd) {
		end := globalEnd
		values := make([]T, n)
		for i, tl := range timelines {
			s := tl.segments[cursors[i]]
			values[i] = s.Value
			if s.End.Before(end) {
				end = s.End
			}
		}
		segs = append(segs, Segment[[]T]{Start: start, End: end, Value: values})
		for i, tl := range timelines {
			if tl.segments[cursors[i]].End.Equal(end) {
				cursors[i]++
			}
		}
		start = end
	}
	return &Timeline[[]T]{segments: segs}, nil
}

// Cross aligns two timelines of possibly different value types covering an
// identical total duration. It behaves like CrossProduct but yields typed
// pairs instead of slices.
func Cross[A, B any](a *Timeline[A], b *Timeline[B]) (*Timeline[Pair[A, B]], error) {
	err := checkSpans([]span{
		{start: a.Start(), end: a.End()},
		{start: b.Start(), end: b.End()},
	})
	if err != nil {
		return nil, err
	}

	segs := make([]Segment[Pair[A, B]], 0, a.Len()+b.Len()-1)
	var i, j int
	start := a.Start()

	for start.Before(a.End()) {
		sa, sb := a.segments[i], b.segments[j]
		end := sa.End
		if sb.End.Before(end) {
			end = sb.End
		}
		segs = append(segs, Segment[Pair[A, B]]{
			Start: start,
			End:   end,
			Value: Pair[A, B]{First: sa.Value, Second: sb.Value},
		})
		if sa.End.Equal(end) {
			i++
		}
		if sb.End.Equal(end) {
			j++
		}
		start = end
	}
	return &Timeline[Pair[A, B]]{segments: segs}, nil
}
