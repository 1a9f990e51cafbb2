package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vdobler/catplot"
)

var statsCmd = &cobra.Command{
	Use:   "stats <data.csv>",
	Short: "Print the statistics of every bin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(config.Logging)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		j, err := prepare(config, args[0], logger)
		if err != nil {
			return err
		}
		res, err := j.chart.Calculate(j.src)
		if err != nil {
			return err
		}
		logger.Info("calculated", zap.Stringer("chart", res.Type), zap.Int("records", j.src.Len()))
		fmt.Fprintln(cmd.OutOrStdout(), j.statsTable(res))
		return nil
	},
}

// statsTable renders the bins of res as text table.
func (j *job) statsTable(res *catplot.Result) string {
	axis := j.chart.Options.Axis
	digits := 4
	if axis.Integer && !axis.Log {
		digits = 8
	}
	num := func(v float64, d int) string {
		if v != v {
			return ""
		}
		return catplot.FormatSignificant(v, d)
	}

	t := table.NewWriter()
	switch {
	case res.BarPie != nil:
		t.AppendHeader(table.Row{"Split", "Category", "N", res.Type.Mode.String()})
		for _, b := range res.BarPie.Bins {
			t.AppendRow(table.Row{
				j.splitName(b.Key.Split),
				j.src.CategoryName(b.Key.Category),
				b.Count,
				strings.Join(catplot.BarLabel(b, res.Type, axis), " "),
			})
		}
	case res.Distribution != nil:
		t.AppendHeader(table.Row{"Split", "Category", "N", "Outliers", "Q1", "Median", "Q3",
			"Mean", "SD", "CI95", "p", "FC"})
		rows := make([]table.Row, 0, len(res.Distribution.Bins))
		for _, b := range res.Distribution.Bins {
			rows = append(rows, table.Row{
				j.splitName(b.Key.Split),
				j.src.CategoryName(b.Key.Category),
				len(b.Values),
				b.Outliers,
				num(b.Box.Q1, digits),
				num(b.Box.Median, digits),
				num(b.Box.Q3, digits),
				num(b.Summary.Mean, digits),
				num(b.Summary.StdDev, digits),
				num(b.Summary.Margin, digits),
				num(b.PValue, 4),
				num(b.FoldChange, 4),
			})
		}
		t.AppendRows(rows)
	default:
		t.AppendHeader(table.Row{"Records"})
		t.AppendRow(table.Row{len(res.Placements)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
