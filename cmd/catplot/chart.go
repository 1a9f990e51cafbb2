package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vdobler/catplot"
)

// job is a chart bound to the records of an input file.
type job struct {
	chart *catplot.Chart
	src   *catplot.FrameSource
}

// prepare reads the CSV file path and sets up the chart of cfg.
func prepare(cfg *Config, path string, logger *zap.Logger) (*job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := catplot.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("read input", zap.String("file", path), zap.Int("rows", frame.N), zap.Strings("columns", frame.Names))

	src, err := frame.Source(cfg.Mapping.Mapping())
	if err != nil {
		return nil, err
	}
	ct, err := cfg.Chart.ChartType()
	if err != nil {
		return nil, err
	}
	if ct.NeedsValue() && cfg.Mapping.Value == "" {
		return nil, fmt.Errorf("%w: %s", catplot.ErrNoValueColumn, ct)
	}
	ct.Column = cfg.Mapping.Value

	opts := src.Options()
	opts.Axis.Static = cfg.Chart.Static
	opts.SizeWeighted = cfg.Mapping.Weight != ""
	if opts.Statistics, err = cfg.Chart.Statistics(); err != nil {
		return nil, err
	}
	if ref := cfg.Chart.Reference; ref >= 0 {
		opts.Reference = catplot.CategoryReference{Categories: opts.Categories, Dim: 0, Level: ref}
	}

	chart := catplot.New(ct, opts, logger)
	if chart.Theme, err = cfg.Chart.Theme(chart.Theme); err != nil {
		return nil, err
	}
	return &job{chart: chart, src: src}, nil
}

// splitName is the text of split tile i.
func (j *job) splitName(i int) string {
	if i < 0 || i >= j.src.SplitLevels.Len() {
		return "-"
	}
	return j.src.SplitLevels.Names[i]
}
