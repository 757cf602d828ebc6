package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type _App struct {
	configPath string
	config     *Config
	logger     *zap.Logger
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		eprintf("Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	app := &_App{}

	cmd := &cobra.Command{
		Use:   "beacon <input>",
		Short: "Locate the distress beacon among sensor reports",
		Long: `beacon reads one sensor report per line:

  Sensor at x=2, y=18: closest beacon is at x=-2, y=15

and prints how many positions of --row cannot hold a beacon, then the tuning
frequency of the only uncovered position in [0, --max]x[0, --max].`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		PersistentPostRun: app.teardown,
		RunE:              app.runSolve,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default .beacon.yaml in . or $HOME)")
	flags.Int64("row", _defaultRow, "row to count excluded positions on")
	flags.Int64("max", _defaultMax, "side of the square searched for the beacon")
	flags.String("format", _defaultFormat, "output format: text, yaml")
	flags.String("color", _defaultColor, "color output: auto, always, never")
	flags.BoolP("verbose", "v", false, "verbose logging")

	cmd.AddCommand(app.rowCommand(), app.renderCommand())
	return cmd
}

func (app *_App) setup(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig(cmd.Flags(), app.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(config.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.config, app.logger = config, logger
	return nil
}

func (app *_App) teardown(*cobra.Command, []string) {
	if app.logger != nil {
		_ = app.logger.Sync()
	}
}

func (app *_App) loadPairs(name string) ([]Pair, error) {
	pairs, err := LoadPairs(name)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("parsed pairs", zap.String("input", name), zap.Int("count", len(pairs)))
	return pairs, nil
}

func (app *_App) runSolve(cmd *cobra.Command, args []string) error {
	pairs, err := app.loadPairs(args[0])
	if err != nil {
		return err
	}
	report, err := app.solve(pairs)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), app.config.Format, report)
}

func (app *_App) solve(pairs []Pair) (Report, error) {
	row, side := app.config.Row, app.config.Max

	intervals := Intervals(pairs, row)
	app.logger.Debug("pairs reaching row",
		zap.Int64("row", row),
		zap.Int("count", len(intervals)),
		intervalsField("merged", Merge(intervals)),
	)

	report := Report{
		Row:        row,
		Coverage:   Coverage(pairs, row),
		Impossible: ImpossiblePositions(pairs, row),
		Max:        side,
	}

	gap, err := FindGap(pairs, side)
	if err != nil {
		var cerr *ConsistencyError
		switch {
		case errors.As(err, &cerr):
			app.logger.Error("search window holds more than one gap",
				zap.Int64("row", cerr.Row), intervalsField("merged", cerr.Intervals))
			return Report{}, fmt.Errorf("inconsistent sensor data: %w", err)
		case errors.Is(err, ErrGapNotFound):
			return Report{}, fmt.Errorf("searched [0, %v]: %w", side, err)
		}
		return Report{}, err
	}
	app.logger.Debug("found gap", zap.Int64("x", gap.X), zap.Int64("y", gap.Y))

	report.Gap = gap
	report.Frequency = gap.TuningFrequency()
	return report, nil
}

func (app *_App) rowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "row <input>",
		Short: "Show the merged exclusion intervals of --row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := app.loadPairs(args[0])
			if err != nil {
				return err
			}
			writeRowTable(cmd.OutOrStdout(), pairs, app.config.Row)
			return nil
		},
	}
}

func writeRowTable(w io.Writer, pairs []Pair, row int64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(sprintf("row %v", row))
	t.AppendHeader(table.Row{"#", "Start", "Stop", "Cells"})
	for i, r := range Merge(Intervals(pairs, row)) {
		t.AppendRow(table.Row{i + 1, r.Start, r.Stop, humanize.Comma(r.Len())})
	}
	t.AppendFooter(table.Row{"", "", "Coverage", humanize.Comma(Coverage(pairs, row))})
	t.AppendFooter(table.Row{"", "", "Impossible", humanize.Comma(ImpossiblePositions(pairs, row))})
	t.Render()
}

func (app *_App) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Draw the exclusion zones of a small region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := app.loadPairs(args[0])
			if err != nil {
				return err
			}

			lo, hi := Bounds(pairs)
			if lo, err = pointFlag(cmd, "from", lo); err != nil {
				return err
			}
			if hi, err = pointFlag(cmd, "to", hi); err != nil {
				return err
			}
			app.logger.Debug("rendering", zap.Any("from", lo), zap.Any("to", hi))

			return Render(cmd.OutOrStdout(), pairs, lo, hi, newRenderStyles(app.config.Color))
		},
	}
	cmd.Flags().Int64Slice("from", nil, "top left corner x,y (default: bounds of the input)")
	cmd.Flags().Int64Slice("to", nil, "bottom right corner x,y (default: bounds of the input)")
	return cmd
}

func pointFlag(cmd *cobra.Command, name string, def Point) (Point, error) {
	v, err := cmd.Flags().GetInt64Slice(name)
	if err != nil {
		return Point{}, err
	}
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return Point{v[0], v[1]}, nil
	}
	return Point{}, fmt.Errorf("--%v wants x,y, got %v", name, v)
}
