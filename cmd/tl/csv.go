package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jack-kerouac/go-timeline/timeline"
)

// readSegments parses a CSV file of start,end,value rows into segments.
// Timestamps use RFC 3339. A header row is skipped if its first field does
// not parse as a timestamp.
func readSegments(path string) ([]timeline.Segment[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	segs := make([]timeline.Segment[string], 0, len(records))
	for i, rec := range records {
		start, err := time.Parse(time.RFC3339, rec[0])
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		end, err := time.Parse(time.RFC3339, rec[1])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+1, err)
		}
		segs = append(segs, timeline.Segment[string]{Start: start, End: end, Value: rec[2]})
	}
	return segs, nil
}

// loadTimeline reads a segment file and builds a validated timeline from it.
func loadTimeline(path string) (*timeline.Timeline[string], error) {
	segs, err := readSegments(path)
	if err != nil {
		return nil, err
	}
	tl, err := timeline.FromSegments(segs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tl, nil
}

// writeTimeline prints a timeline as start,end,value CSV rows.
func writeTimeline[T any](w io.Writer, tl *timeline.Timeline[T]) error {
	cw := csv.NewWriter(w)
	for s := range tl.All() {
		row := []string{
			s.Start.Format(time.RFC3339),
			s.End.Format(time.RFC3339),
			fmt.Sprint(s.Value),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
