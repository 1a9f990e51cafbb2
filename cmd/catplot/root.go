package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catplot",
	Short: "Bar, pie, box, whisker, violin and ridgeline charts from CSV data",
	Long: `catplot reads a CSV file, bins its rows by the configured category, color
and split columns and prints the per bin statistics (catplot stats) or
draws the chart as SVG or PNG (catplot draw).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./catplot.yaml)")

	// Chart flags
	flags.String("chart", "", "YAML chart definition file, overrides --kind, --mode, ...")
	flags.String("kind", "bar", "chart kind (bar, pie, box, whisker, violin, ridgeline)")
	flags.String("mode", "count", "bar and pie aggregation (count, percent, mean, min, max, sum)")
	flags.String("orientation", "vertical", "orientation of the value axis (vertical, horizontal)")
	flags.String("whisker", "stddev", "whisker extent (stddev, ci)")
	flags.Float64("smoothing", 0.5, "violin and ridgeline smoothing in [0,1]")
	flags.Bool("static", false, "keep the value axis when rows are filtered out")
	flags.StringSlice("stats", nil, "statistics shown per bin (count, mean, median, sd, ci, p, fc)")
	flags.Int("reference", -1, "level of the first category compared against in t-tests (-1 = none)")
	flags.StringSlice("colors", nil, "palette of the base colors")
	flags.String("outlier-shape", "", "marker of box plot outliers (circle, square, diamond, ...)")
	flags.String("whisker-line", "", "line type of whiskers (solid, dashed, dotted, dotdash)")
	flags.String("marker-size", "", "relative marker and violin size, e.g. 1.5 or 150%")

	// Mapping flags
	flags.String("value", "", "numeric column")
	flags.String("weight", "", "size weighting column")
	flags.String("category", "", "first category column")
	flags.String("category2", "", "second category column")
	flags.String("case", "", "case separation column")
	flags.String("color", "", "color column")
	flags.String("split", "", "split view column")
	flags.Bool("log", false, "logarithmic value axis")

	// Logging flags
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("chart.file", flags.Lookup("chart"))
	_ = viper.BindPFlag("chart.kind", flags.Lookup("kind"))
	_ = viper.BindPFlag("chart.mode", flags.Lookup("mode"))
	_ = viper.BindPFlag("chart.orientation", flags.Lookup("orientation"))
	_ = viper.BindPFlag("chart.whisker", flags.Lookup("whisker"))
	_ = viper.BindPFlag("chart.smoothing", flags.Lookup("smoothing"))
	_ = viper.BindPFlag("chart.static", flags.Lookup("static"))
	_ = viper.BindPFlag("chart.stats", flags.Lookup("stats"))
	_ = viper.BindPFlag("chart.reference", flags.Lookup("reference"))
	_ = viper.BindPFlag("chart.colors", flags.Lookup("colors"))
	_ = viper.BindPFlag("chart.outlier_shape", flags.Lookup("outlier-shape"))
	_ = viper.BindPFlag("chart.whisker_line", flags.Lookup("whisker-line"))
	_ = viper.BindPFlag("chart.marker_size", flags.Lookup("marker-size"))

	_ = viper.BindPFlag("mapping.value", flags.Lookup("value"))
	_ = viper.BindPFlag("mapping.weight", flags.Lookup("weight"))
	_ = viper.BindPFlag("mapping.category", flags.Lookup("category"))
	_ = viper.BindPFlag("mapping.category2", flags.Lookup("category2"))
	_ = viper.BindPFlag("mapping.case", flags.Lookup("case"))
	_ = viper.BindPFlag("mapping.color", flags.Lookup("color"))
	_ = viper.BindPFlag("mapping.split", flags.Lookup("split"))
	_ = viper.BindPFlag("mapping.log", flags.Lookup("log"))

	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(statsCmd, drawCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
}
