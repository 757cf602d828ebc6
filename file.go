package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const _maxLineSize = 4096

// LoadPairs reads the puzzle input stored in the named file.
func LoadPairs(name string) (pairs []Pair, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	return ReadPairs(file)
}

// ReadPairs parses one pair per line of r. Blank lines are skipped but still
// counted for error reporting.
func ReadPairs(r io.Reader) (pairs []Pair, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)

	lineNo := 0
	for s.Scan() {
		lineNo++

		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		p, err := ParseLine(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = lineNo
			}
			return nil, err
		}
		pairs = append(pairs, p)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return pairs, nil
}
