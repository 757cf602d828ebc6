package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrSyntax = errors.New("line does not describe a sensor")

var _pairPattern = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`,
)

// ParseError reports a malformed input line. Line is 1-based, or zero when
// the line was parsed on its own.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %v: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine parses one line of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
func ParseLine(line string) (Pair, error) {
	slice := _pairPattern.FindStringSubmatch(line)
	if slice == nil {
		return Pair{}, &ParseError{Text: line, Err: ErrSyntax}
	}

	var v [4]int64
	for i := range v {
		n, err := strconv.ParseInt(slice[i+1], 10, 64)
		if err != nil {
			return Pair{}, &ParseError{Text: line, Err: err}
		}
		v[i] = n
	}

	return Pair{Sensor: Point{v[0], v[1]}, Beacon: Point{v[2], v[3]}}, nil
}

// ParseLines parses every line in order. The first malformed line stops the
// parse.
func ParseLines(lines []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		p, err := ParseLine(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = i + 1
			}
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
