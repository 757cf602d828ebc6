package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const _maxRenderSide = 256

type renderStyles struct {
	sensor   *color.Color
	beacon   *color.Color
	excluded *color.Color
	open     *color.Color
}

func newRenderStyles(mode string) *renderStyles {
	s := &renderStyles{
		sensor:   color.New(color.Bold, color.FgHiGreen),
		beacon:   color.New(color.Bold, color.FgHiBlue),
		excluded: color.New(color.FgYellow),
		open:     color.New(color.Faint),
	}

	enabled := !color.NoColor
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	}
	for _, c := range []*color.Color{s.sensor, s.beacon, s.excluded, s.open} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Render draws the region between the corners lo and hi, one line per row:
// S for a sensor, B for a beacon, # for a cell inside some exclusion zone and
// . for anything else.
func Render(w io.Writer, pairs []Pair, lo, hi Point, styles *renderStyles) error {
	if lo.X > hi.X || lo.Y > hi.Y {
		return fmt.Errorf("empty region %v-%v", lo, hi)
	}
	if hi.X-lo.X >= _maxRenderSide || hi.Y-lo.Y >= _maxRenderSide {
		return fmt.Errorf("region %v-%v too large to render (max side %v)", lo, hi, _maxRenderSide)
	}

	marks := make(map[Point]byte, 2*len(pairs))
	for _, p := range pairs {
		marks[p.Beacon] = 'B'
		marks[p.Sensor] = 'S'
	}

	for y := lo.Y; y <= hi.Y; y++ {
		fprintf(w, "%4d ", y)
		merged := Merge(Intervals(pairs, y))
		i := 0
		for x := lo.X; x <= hi.X; x++ {
			for i < len(merged) && merged[i].Stop < x {
				i++
			}
			switch marks[Point{x, y}] {
			case 'S':
				fprint(w, styles.sensor.Sprint("S"))
			case 'B':
				fprint(w, styles.beacon.Sprint("B"))
			default:
				if i < len(merged) && merged[i].Start <= x {
					fprint(w, styles.excluded.Sprint("#"))
				} else {
					fprint(w, styles.open.Sprint("."))
				}
			}
		}
		fprintln(w)
	}
	return nil
}
