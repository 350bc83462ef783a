package timeline

import (
	"fmt"
	"time"
)

// A Table is the row-oriented interchange shape used for bulk import and
// export of segments: three parallel columns where row i describes the
// segment [Start[i], End[i]) holding Value[i].
type Table[T any] struct {
	Start []time.Time
	End   []time.Time
	Value []T
}

// FromTable creates a Timeline from the interchange shape. It fails with
// ErrColumns if the columns have different lengths; otherwise rows are
// converted to segments and handled exactly like in FromSegments, with no gap
// filling.
func FromTable[T any](tb Table[T]) (*Timeline[T], error) {
	if len(tb.Start) != len(tb.End) || len(tb.Start) != len(tb.Value) {
		return nil, fmt.Errorf("%w: start %d, end %d, value %d",
			ErrColumns, len(tb.Start), len(tb.End), len(tb.Value))
	}
	segs := make([]Segment[T], len(tb.Start))
	for i := range tb.Start {
		segs[i] = Segment[T]{Start: tb.Start[i], End: tb.End[i], Value: tb.Value[i]}
	}
	return FromSegments(segs)
}

// Table exports the timeline's segments in the interchange shape. The
// returned columns are copies; modifying them does not affect the timeline.
func (tl *Timeline[T]) Table() Table[T] {
	tb := Table[T]{
		Start: make([]time.Time, len(tl.segments)),
		End:   make([]time.Time, len(tl.segments)),
		Value: make([]T, len(tl.segments)),
	}
	for i, s := range tl.segments {
		tb.Start[i], tb.End[i], tb.Value[i] = s.Start, s.End, s.Value
	}
	return tb
}
