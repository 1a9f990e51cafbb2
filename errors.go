package catplot

import "errors"

var (
	ErrUnknownKind    = errors.New("catplot: unknown chart kind")
	ErrUnknownMode    = errors.New("catplot: unknown aggregation mode")
	ErrNoSource       = errors.New("catplot: no data source")
	ErrNoValueColumn  = errors.New("catplot: chart kind needs a value column")
	ErrKindMismatch   = errors.New("catplot: result does not match chart kind")
	ErrUnknownColumn  = errors.New("catplot: unknown column")
	ErrUnsupportedCol = errors.New("catplot: unsupported column type")
)
