package timeline

// MergeAdjacentFunc returns a timeline in which every run of consecutive
// segments whose values compare equal under eq is consolidated into a single
// wider segment. Total duration and ordering are preserved, and the operation
// is idempotent: merging an already-merged timeline is a no-op.
func (tl *Timeline[T]) MergeAdjacentFunc(eq func(a, b T) bool) *Timeline[T] {
	merged := make([]Segment[T], 0, len(tl.segments))
	for _, s := range tl.segments {
		if n := len(merged); n > 0 && eq(merged[n-1].Value, s.Value) {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return &Timeline[T]{segments: merged}
}

// MergeAdjacent returns tl with consecutive equal-valued segments
// consolidated, comparing values with ==.
func MergeAdjacent[T comparable](tl *Timeline[T]) *Timeline[T] {
	return tl.MergeAdjacentFunc(func(a, b T) bool { return a == b })
}

// Map returns a timeline with f applied to every segment value. Segment
// boundaries are preserved exactly, so the result is valid by construction.
// If f panics, the panic propagates to the caller.
func Map[T, U any](tl *Timeline[T], f func(T) U) *Timeline[U] {
	segs := make([]Segment[U], len(tl.segments))
	for i, s := range tl.segments {
		segs[i] = Segment[U]{Start: s.Start, End: s.End, Value: f(s.Value)}
	}
	return &Timeline[U]{segments: segs}
}
