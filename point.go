package main

const _tuningMultiplier = 4000000

type Point struct {
	X, Y int64
}

// TuningFrequency packs p into a single integer for reporting.
func (p Point) TuningFrequency() int64 {
	return p.X*_tuningMultiplier + p.Y
}

func Manhattan(a, b Point) int64 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Pair is a sensor and the closest beacon it detected.
type Pair struct {
	Sensor, Beacon Point
}

// Radius returns the extent of the sensor's exclusion zone.
func (p Pair) Radius() int64 {
	return Manhattan(p.Sensor, p.Beacon)
}

// Bounds returns the corners of the smallest box holding every exclusion
// zone and every beacon in pairs.
func Bounds(pairs []Pair) (lo, hi Point) {
	for i, p := range pairs {
		d := p.Radius()
		if i == 0 {
			lo, hi = p.Sensor, p.Sensor
		}
		lo.X = min64(lo.X, p.Sensor.X-d, p.Beacon.X)
		lo.Y = min64(lo.Y, p.Sensor.Y-d, p.Beacon.Y)
		hi.X = max64(hi.X, p.Sensor.X+d, p.Beacon.X)
		hi.Y = max64(hi.Y, p.Sensor.Y+d, p.Beacon.Y)
	}
	return
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func min64(x int64, a ...int64) int64 {
	for _, v := range a {
		if v < x {
			x = v
		}
	}
	return x
}

func max64(x int64, a ...int64) int64 {
	for _, v := range a {
		if v > x {
			x = v
		}
	}
	return x
}
