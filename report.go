package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Report struct {
	Row        int64 `yaml:"row"`
	Coverage   int64 `yaml:"coverage"`
	Impossible int64 `yaml:"impossible"`
	Max        int64 `yaml:"max"`
	Gap        Point `yaml:"gap"`
	Frequency  int64 `yaml:"frequency"`
}

// writeReport prints r in the given format. The text format is just the two
// answers, one per line.
func writeReport(w io.Writer, format string, r Report) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "%v\n%v\n", r.Coverage, r.Frequency)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
