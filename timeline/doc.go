/*
Package timeline implements a step function over continuous time. It defines
the type Timeline, a value of type T that stays constant for a segment of time
and then instantly changes to a new value at the start of the next segment,
and the type Store, with methods for interacting with a keyed collection of
timelines.

A Timeline is an ordered sequence of segments, each covering the half-open
interval [Start, End). Segments are back-to-back, non-overlapping, and
contiguous: for any instant within the total duration there is exactly one
value defined. Every constructor validates these invariants and fails with a
distinguishable error if they do not hold; once built, a Timeline is never
modified. Operations such as Slice, MergeAdjacentFunc, Map and CrossProduct
always produce new timelines.

CrossProduct aligns several timelines covering an identical duration into one
composite timeline with a boundary at every instant where any input changes
value:

	availability, _ := timeline.FromSegments(...)
	price, _ := timeline.FromSegments(...)
	combined, err := timeline.Cross(availability, price)

Timelines are immutable, so all operations in this package are safe to use
from multiple goroutines without synchronization.
*/
package timeline
