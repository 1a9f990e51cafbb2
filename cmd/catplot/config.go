package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vdobler/catplot"
)

// DefaultConfigFileName is searched for in the working directory.
const DefaultConfigFileName = "catplot"

// Config is the configuration of one catplot run.
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"`
	Mapping MappingConfig `mapstructure:"mapping"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ChartConfig selects the chart and its options.
type ChartConfig struct {
	File        string   `mapstructure:"file"`
	Kind        string   `mapstructure:"kind"`
	Mode        string   `mapstructure:"mode"`
	Orientation string   `mapstructure:"orientation"`
	Whisker     string   `mapstructure:"whisker"`
	Smoothing   float64  `mapstructure:"smoothing"`
	Static      bool     `mapstructure:"static"`
	Stats       []string `mapstructure:"stats"`
	Reference   int      `mapstructure:"reference"`
	Colors      []string `mapstructure:"colors"`

	OutlierShape string `mapstructure:"outlier_shape"`
	WhiskerLine  string `mapstructure:"whisker_line"`
	MarkerSize   string `mapstructure:"marker_size"` // factor or percentage
}

// MappingConfig names the columns of the CSV input.
type MappingConfig struct {
	Value     string            `mapstructure:"value"`
	Weight    string            `mapstructure:"weight"`
	Category  string            `mapstructure:"category"`
	Category2 string            `mapstructure:"category2"`
	Case      string            `mapstructure:"case"`
	Color     string            `mapstructure:"color"`
	Split     string            `mapstructure:"split"`
	Selected  string            `mapstructure:"selected"`
	Filtered  string            `mapstructure:"filtered"`
	Log       bool              `mapstructure:"log"`
	Where     map[string]string `mapstructure:"where"`
}

// OutputConfig controls the drawn image. Sizes are in points.
type OutputConfig struct {
	File   string  `mapstructure:"file"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig merges defaults, the config file, a .env file, CATPLOT_*
// environment variables and the command line flags.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// Config file not found; using defaults + env vars + flags
	}

	viper.SetEnvPrefix("CATPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("chart.kind", "bar")
	viper.SetDefault("chart.mode", "count")
	viper.SetDefault("chart.orientation", "vertical")
	viper.SetDefault("chart.whisker", "stddev")
	viper.SetDefault("chart.smoothing", 0.5)
	viper.SetDefault("chart.reference", -1)
	for _, key := range []string{"outlier_shape", "whisker_line", "marker_size"} {
		viper.SetDefault("chart."+key, "")
	}

	for _, key := range []string{"value", "weight", "category", "category2", "case",
		"color", "split", "selected", "filtered"} {
		viper.SetDefault("mapping."+key, "")
	}
	viper.SetDefault("mapping.log", false)

	viper.SetDefault("output.file", "chart.svg")
	viper.SetDefault("output.width", 480)
	viper.SetDefault("output.height", 320)

	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
}

// ChartType returns the chart definition, read from File if set.
func (c ChartConfig) ChartType() (catplot.ChartType, error) {
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return catplot.ChartType{}, err
		}
		defer f.Close()
		return catplot.LoadChartType(f)
	}

	var def strings.Builder
	fmt.Fprintf(&def, "kind: %q\nmode: %q\norientation: %q\n", c.Kind, c.Mode, c.Orientation)
	fmt.Fprintf(&def, "whisker: %q\nsmoothing: %g\n", c.Whisker, c.Smoothing)
	return catplot.LoadChartType(strings.NewReader(def.String()))
}

// Statistics returns the enabled statistics.
func (c ChartConfig) Statistics() (catplot.StatisticsOptions, error) {
	var so catplot.StatisticsOptions
	for _, s := range c.Stats {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "count", "n":
			so.Count = true
		case "mean":
			so.Mean = true
		case "median":
			so.Median = true
		case "sd", "stddev":
			so.StdDev = true
		case "ci", "ci95":
			so.ConfidenceInterval = true
		case "p", "pvalue":
			so.PValue = true
		case "fc", "foldchange":
			so.FoldChange = true
		case "all":
			so = catplot.StatisticsOptions{Count: true, Mean: true, Median: true, StdDev: true,
				ConfidenceInterval: true, PValue: true, FoldChange: true}
		default:
			return so, fmt.Errorf("unknown statistic %q", s)
		}
	}
	return so, nil
}

// Theme applies the look settings of c to theme.
func (c ChartConfig) Theme(theme catplot.Theme) (catplot.Theme, error) {
	if len(c.Colors) > 0 {
		pal, err := catplot.NewPalette(c.Colors...)
		if err != nil {
			return theme, err
		}
		theme.Palette = pal
	}
	if c.OutlierShape != "" {
		theme.OutlierShape = catplot.String2PointShape(c.OutlierShape)
	}
	if c.WhiskerLine != "" {
		theme.WhiskerLine = catplot.String2LineType(c.WhiskerLine)
	}
	if c.MarkerSize != "" {
		size, err := catplot.String2Float(c.MarkerSize, 0.1, 10)
		if err != nil {
			return theme, err
		}
		theme.MarkerSize = size
	}
	return theme, nil
}

// Mapping converts m.
func (m MappingConfig) Mapping() catplot.Mapping {
	return catplot.Mapping{
		Value:    m.Value,
		Weight:   m.Weight,
		Category: [2]string{m.Category, m.Category2},
		Case:     m.Case,
		Color:    m.Color,
		Split:    m.Split,
		Selected: m.Selected,
		Filtered: m.Filtered,
		Log:      m.Log,
		Where:    m.Where,
	}
}

// newLogger builds the logger of the command.
func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Format != "json" {
		zapConfig.Encoding = "console"
	}

	logLevel := zap.WarnLevel
	if cfg.Level != "" {
		if err := logLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	zapConfig.Level = zap.NewAtomicLevelAt(logLevel)
	return zapConfig.Build(zap.AddStacktrace(zap.ErrorLevel))
}
