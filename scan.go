package main

import (
	"errors"
	"fmt"

	"github.com/b97tsk/rangeset"
)

var ErrGapNotFound = errors.New("no uncovered position in window")

// ConsistencyError means a row of the search window did not look like it
// holds at most one uncovered position.
type ConsistencyError struct {
	Row       int64
	Intervals []Interval
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("row %v: unexpected coverage %v", e.Row, e.Intervals)
}

// Coverage sums Stop-Start over the merged exclusion intervals of row.
// Beacons sitting on row are not subtracted.
func Coverage(pairs []Pair, row int64) int64 {
	var n int64
	for _, r := range Merge(Intervals(pairs, row)) {
		n += r.Stop - r.Start
	}
	return n
}

// ImpossiblePositions counts the positions of row that cannot hold a beacon
// other than the ones already known.
func ImpossiblePositions(pairs []Pair, row int64) int64 {
	var s rangeset.RangeSet[int64]
	for _, r := range Merge(Intervals(pairs, row)) {
		s.AddRange(r.Start, r.Stop+1)
	}
	for _, p := range pairs {
		if p.Beacon.Y == row {
			s.Delete(p.Beacon.X)
		}
	}

	var n int64
	for _, r := range s {
		n += r.High - r.Low
	}
	return n
}

// FindGap searches [0, side]×[0, side] for the only position no sensor
// covers.
func FindGap(pairs []Pair, side int64) (Point, error) {
	for y := int64(0); y <= side; y++ {
		var clipped []Interval
		for _, r := range Intervals(pairs, y) {
			if r, ok := r.Clip(0, side); ok {
				clipped = append(clipped, r)
			}
		}

		merged := Merge(clipped)
		switch len(merged) {
		case 1:
			r := merged[0]
			switch {
			case r.Start == 0 && r.Stop == side:
				continue
			case r.Start == 0 && r.Stop == side-1:
				return Point{side, y}, nil
			case r.Start == 1 && r.Stop == side:
				return Point{0, y}, nil
			}
		case 2:
			left, right := merged[0], merged[1]
			if left.Start == 0 && right.Stop == side && right.Start == left.Stop+2 {
				return Point{left.Stop + 1, y}, nil
			}
		}
		return Point{}, &ConsistencyError{Row: y, Intervals: merged}
	}
	return Point{}, ErrGapNotFound
}
