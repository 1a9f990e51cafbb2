package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/catplot/render"
)

var drawCmd = &cobra.Command{
	Use:   "draw <data.csv>",
	Short: "Draw the chart as SVG or PNG",
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
		w, h := vg.Points(config.Output.Width), vg.Points(config.Output.Height)
		_, g, err := j.chart.Draw(j.src, render.Area(w, h))
		if err != nil {
			return err
		}
		if err := render.WriteFile(config.Output.File, g, j.chart.Theme, w, h); err != nil {
			return err
		}
		logger.Info("chart written",
			zap.String("file", config.Output.File),
			zap.Stringer("chart", g.Type),
			zap.Int("tiles", len(g.Tiles)))
		return nil
	},
}

func init() {
	drawCmd.Flags().StringP("output", "o", "chart.svg", "output file, .svg or .png")
	drawCmd.Flags().Float64("width", 480, "image width in points")
	drawCmd.Flags().Float64("height", 320, "image height in points")
	_ = viper.BindPFlag("output.file", drawCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.width", drawCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("output.height", drawCmd.Flags().Lookup("height"))
}
