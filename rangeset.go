package main

import (
	"sort"
)

// Interval is the closed range [Start, Stop] along one row.
type Interval struct {
	Start, Stop int64
}

// Len returns the number of integers in r.
func (r Interval) Len() int64 {
	return r.Stop - r.Start + 1
}

// Clip returns the part of r inside [low, high], if any.
func (r Interval) Clip(low, high int64) (Interval, bool) {
	if r.Start < low {
		r.Start = low
	}
	if r.Stop > high {
		r.Stop = high
	}
	return r, r.Start <= r.Stop
}

// Project returns the cells of row excluded by p's sensor. It reports false
// when the exclusion zone does not reach row.
func Project(p Pair, row int64) (Interval, bool) {
	d := p.Radius()
	off := abs(row - p.Sensor.Y)
	if off > d {
		return Interval{}, false
	}
	w := d - off
	return Interval{p.Sensor.X - w, p.Sensor.X + w}, true
}

// Intervals projects every pair onto row, skipping pairs that do not reach it.
func Intervals(pairs []Pair, row int64) []Interval {
	var s []Interval
	for _, p := range pairs {
		if r, ok := Project(p, row); ok {
			s = append(s, r)
		}
	}
	return s
}

// Merge returns the disjoint intervals covering the same integers as s,
// sorted by Start. Overlapping and adjacent intervals are joined, so
// consecutive results are at least two apart. s is left untouched.
func Merge(s []Interval) []Interval {
	if len(s) == 0 {
		return nil
	}

	sorted := make([]Interval, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if r.Start <= current.Stop+1 {
			if r.Stop > current.Stop {
				current.Stop = r.Stop
			}
			continue
		}
		merged = append(merged, current)
		current = r
	}
	return append(merged, current)
}
