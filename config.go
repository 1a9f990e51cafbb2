package catplot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadChartType reads a chart definition like
//
//	kind: violin
//	mode: mean
//	column: Weight
//	orientation: horizontal
//	smoothing: 0.6
//
// Missing keys keep their zero value, except smoothing which defaults
// to 0.5.
func LoadChartType(r io.Reader) (ChartType, error) {
	ct := ChartType{Kind: Bar, Smoothing: 0.5}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ct); err != nil && !errors.Is(err, io.EOF) {
		return ChartType{}, fmt.Errorf("chart definition: %w", err)
	}
	if err := ct.Validate(); err != nil {
		return ChartType{}, err
	}
	return ct, nil
}

func scalar(value *yaml.Node) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	return strings.TrimSpace(value.Value), nil
}

func (k *ChartKind) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value)
	if err != nil {
		return err
	}
	*k, err = ParseKind(s)
	return err
}

func (k ChartKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value)
	if err != nil {
		return err
	}
	*m, err = ParseMode(s)
	return err
}

func (m Mode) MarshalYAML() (interface{}, error) { return m.String(), nil }

func (o *Orientation) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "vertical", "":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("line %d: unknown orientation %q", value.Line, s)
	}
	return nil
}

func (o Orientation) MarshalYAML() (interface{}, error) { return o.String(), nil }

func (w *WhiskerMode) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "stddev", "sd", "":
		*w = WhiskerStdDev
	case "ci", "ci95", "confidence":
		*w = WhiskerConfidence
	default:
		return fmt.Errorf("line %d: unknown whisker mode %q", value.Line, s)
	}
	return nil
}

func (w WhiskerMode) MarshalYAML() (interface{}, error) {
	if w == WhiskerConfidence {
		return "ci", nil
	}
	return "stddev", nil
}
