package timeline

import (
	"errors"
	"testing"
	"time"
)

func TestAt(t *testing.T) {
	tl, err := FromSegments([]Segment[string]{
		seg("00:00", "01:00", "a"),
		seg("01:00", "02:00", "b"),
		seg("02:00", "03:00", "c"),
	})
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	tests := []struct {
		id   int
		at   time.Time
		want string
	}{
		{1, hm("00:00"), "a"},
		{2, hm("00:30"), "a"},
		{3, hm("01:00"), "b"}, // boundary resolves to the segment starting there
		{4, hm("01:59"), "b"},
		{5, hm("02:00"), "c"},
		{6, hm("02:59"), "c"},
	}
	for _, tt := range tests {
		got, err := tl.At(tt.at)
		if err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if got != tt.want {
			t.Fatalf("test %d: got %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	tl, _ := FromSegments([]Segment[string]{seg("01:00", "02:00", "a")})
	tests := []struct {
		id int
		at time.Time
	}{
		{1, hm("00:59")},
		{2, hm("02:00")}, // exclusive end
		{3, hm("03:00")},
	}
	for _, tt := range tests {
		if _, err := tl.At(tt.at); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("test %d: got error %v, want %v", tt.id, err, ErrOutOfRange)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		id         int
		segs       []Segment[int]
		start, end time.Time
		want       []Segment[int]
	}{
		{
			1,
			[]Segment[int]{seg("00:00", "01:00", 1)},
			hm("00:30"), hm("00:45"),
			[]Segment[int]{seg("00:30", "00:45", 1)},
		},
		{
			2,
			[]Segment[int]{seg("00:00", "01:00", 1), seg("01:00", "02:00", 2)},
			hm("00:30"), hm("01:30"),
			[]Segment[int]{seg("00:30", "01:00", 1), seg("01:00", "01:30", 2)},
		},
		{
			3,
			[]Segment[int]{
				seg("00:00", "01:00", 1), seg("01:00", "02:00", 2),
				seg("02:00", "03:00", 3), seg("03:00", "04:00", 4),
			},
			hm("01:00"), hm("03:00"),
			[]Segment[int]{seg("01:00", "02:00", 2), seg("02:00", "03:00", 3)},
		},
		{
			4,
			[]Segment[int]{seg("00:00", "01:00", 1), seg("01:00", "02:00", 2)},
			hm("00:00"), hm("02:00"),
			[]Segment[int]{seg("00:00", "01:00", 1), seg("01:00", "02:00", 2)},
		},
		{
			5,
			[]Segment[int]{seg("00:00", "01:00", 1), seg("01:00", "02:00", 2)},
			hm("01:15"), hm("01:45"),
			[]Segment[int]{seg("01:15", "01:45", 2)},
		},
	}
	for _, tt := range tests {
		tl, err := FromSegments(tt.segs)
		if err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		got, err := tl.Slice(tt.start, tt.end)
		if err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if !assertSegments(got, tt.want) {
			t.Fatalf("test %d:\ngot  %v\nwant %v", tt.id, got.segments, tt.want)
		}
	}
}

func TestSliceErrors(t *testing.T) {
	tl, _ := FromSegments([]Segment[int]{
		seg("00:30", "01:00", 1),
		seg("01:00", "02:00", 2),
	})
	tests := []struct {
		id         int
		start, end time.Time
	}{
		{1, hm("01:00"), hm("01:00")}, // empty range
		{2, hm("01:30"), hm("01:00")}, // inverted range
		{3, hm("00:15"), hm("01:30")}, // starts before the timeline
		{4, hm("01:15"), hm("02:30")}, // ends after the timeline
		{5, hm("02:00"), hm("03:00")}, // entirely outside
	}
	for _, tt := range tests {
		if _, err := tl.Slice(tt.start, tt.end); !errors.Is(err, ErrRange) {
			t.Fatalf("test %d: got error %v, want %v", tt.id, err, ErrRange)
		}
	}
}

func TestSliceAgreesWithAt(t *testing.T) {
	tl, _ := FromSegments([]Segment[string]{
		seg("00:00", "00:40", "a"),
		seg("00:40", "01:10", "b"),
		seg("01:10", "02:00", "c"),
	})
	sliced, err := tl.Slice(hm("00:20"), hm("01:30"))
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	for at := hm("00:20"); at.Before(hm("01:30")); at = at.Add(5 * time.Minute) {
		want, err := tl.At(at)
		if err != nil {
			t.Fatalf("at %s: got error %s, want error nil", at, err)
		}
		got, err := sliced.At(at)
		if err != nil {
			t.Fatalf("at %s: got error %s, want error nil", at, err)
		}
		if got != want {
			t.Fatalf("at %s: got %q, want %q", at, got, want)
		}
	}
}
