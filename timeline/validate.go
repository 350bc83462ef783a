package timeline

import (
	"errors"
	"fmt"
	"time"
)

// Errors reported by constructors, queries and combinators. They are wrapped
// with details about the offending segment or boundary; use errors.Is to test
// for a kind.
var (
	ErrEmpty            = errors.New("timeline must have at least one segment")
	ErrInvalidSegment   = errors.New("segment start must be before its end")
	ErrNotSorted        = errors.New("segment start times must be strictly increasing")
	ErrOverlap          = errors.New("segments must not overlap")
	ErrGap              = errors.New("segments must be contiguous")
	ErrColumns          = errors.New("table columns must have equal lengths")
	ErrOutOfRange       = errors.New("instant outside timeline")
	ErrRange            = errors.New("range not covered by timeline")
	ErrNoTimelines      = errors.New("cross product requires at least one timeline")
	ErrDurationMismatch = errors.New("timelines must cover the same duration")
	ErrUnknownKey       = errors.New("key does not exist in store")
)

// validate checks a candidate segment sequence, already ordered by start
// time, against the timeline invariants. It classifies every input: an empty
// sequence, a degenerate segment, duplicate start times, an overlap and a
// coverage gap each map to a distinct error carrying the offending index and
// boundaries. A nil return guarantees the full invariant set, which
// operations on a live Timeline never re-check.
func validate[T any](segments []Segment[T]) error {
	if len(segments) == 0 {
		return ErrEmpty
	}
	for i, s := range segments {
		if !s.Start.Before(s.End) {
			return fmt.Errorf("%w: segment %d covers [%s, %s)",
				ErrInvalidSegment, i, fmtTime(s.Start), fmtTime(s.End))
		}
	}
	for i := 1; i < len(segments); i++ {
		prev, cur := segments[i-1], segments[i]
		switch {
		case !prev.Start.Before(cur.Start):
			return fmt.Errorf("%w: segment %d starts at %s, segment %d at %s",
				ErrNotSorted, i-1, fmtTime(prev.Start), i, fmtTime(cur.Start))
		case cur.Start.Before(prev.End):
			return fmt.Errorf("%w: segment %d ends at %s but segment %d starts at %s",
				ErrOverlap, i-1, fmtTime(prev.End), i, fmtTime(cur.Start))
		case prev.End.Before(cur.Start):
			return fmt.Errorf("%w: no coverage between %s and %s before segment %d",
				ErrGap, fmtTime(prev.End), fmtTime(cur.Start), i)
		}
	}
	return nil
}

func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
