package catplot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FieldType is the type of a column.
type FieldType int

const (
	Float FieldType = iota
	Int
	String
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case String:
		return "string"
	}
	return "float"
}

// Column is one column of a Frame. Numbers are stored as float64,
// strings as indices into the string pool of the frame.
type Column struct {
	Name string
	Type FieldType
	Data []float64
}

// Discrete reports whether c holds categorical data.
func (c *Column) Discrete() bool { return c.Type != Float }

// Frame is a column oriented table of data.
type Frame struct {
	N       int
	Names   []string // column names in definition order
	Columns map[string]*Column
	Pool    *StringPool
}

func newFrame(n int) *Frame {
	return &Frame{N: n, Columns: make(map[string]*Column), Pool: NewStringPool()}
}

func (f *Frame) add(c *Column) {
	f.Names = append(f.Names, c.Name)
	f.Columns[c.Name] = c
}

// NewFrame constructs a frame from a slice of structs. Exported fields
// of integer, float, bool and string kind become columns, so do methods
// without arguments returning one of these kinds:
//
//	type Measurement struct {
//	    Height, Weight float64
//	    Origin         string
//	}
//	func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
func NewFrame(data interface{}) (*Frame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert %T to frame", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot convert %T to frame: elements are no structs", data)
	}
	n := v.Len()
	f := newFrame(n)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		i := i
		if c := f.reflectColumn(sf.Name, sf.Type, n, func(j int) reflect.Value {
			return v.Index(j).Field(i)
		}); c != nil {
			f.add(c)
		}
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if c := f.reflectColumn(m.Name, m.Type.Out(0), n, func(j int) reflect.Value {
			return m.Func.Call([]reflect.Value{v.Index(j)})[0]
		}); c != nil {
			f.add(c)
		}
	}
	return f, nil
}

// reflectColumn builds a column from n values of type t. Unsupported
// types yield nil.
func (f *Frame) reflectColumn(name string, t reflect.Type, n int, value func(int) reflect.Value) *Column {
	c := &Column{Name: name, Data: make([]float64, n)}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c.Type = Int
		for j := range c.Data {
			c.Data[j] = float64(value(j).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		c.Type = Int
		for j := range c.Data {
			c.Data[j] = float64(value(j).Uint())
		}
	case reflect.Bool:
		c.Type = Int
		for j := range c.Data {
			if value(j).Bool() {
				c.Data[j] = 1
			}
		}
	case reflect.Float32, reflect.Float64:
		c.Type = Float
		for j := range c.Data {
			c.Data[j] = value(j).Float()
		}
	case reflect.String:
		c.Type = String
		for j := range c.Data {
			c.Data[j] = float64(f.Pool.Add(value(j).String()))
		}
	default:
		return nil
	}
	return c
}

// ReadCSV reads a frame from comma separated data with a header line.
// Columns where every non empty cell is a number are numeric, empty
// cells become NaN. All other columns are text.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("read csv: missing header")
	}
	header, rows := rows[0], rows[1:]
	f := newFrame(len(rows))
	for k, name := range header {
		c := &Column{Name: strings.TrimSpace(name), Type: Int, Data: make([]float64, len(rows))}
		for j, row := range rows {
			cell := strings.TrimSpace(row[k])
			if cell == "" {
				c.Data[j] = math.NaN()
				continue
			}
			x, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				c.Type = String
				break
			}
			if x != math.Trunc(x) {
				c.Type = Float
			}
			c.Data[j] = x
		}
		if c.Type == String {
			for j, row := range rows {
				c.Data[j] = float64(f.Pool.Add(strings.TrimSpace(row[k])))
			}
		}
		f.add(c)
	}
	return f, nil
}

// Column returns the column with the given name.
func (f *Frame) Column(name string) (*Column, error) {
	c, ok := f.Columns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	return c, nil
}

// Text returns the value of column c in row i as text.
func (f *Frame) Text(c *Column, i int) string {
	if c.Type == String {
		return f.Pool.Get(int(c.Data[i]))
	}
	return formatLevel(c.Data[i])
}

// Levels returns the distinct values of the named column.
func (f *Frame) Levels(name string) (Levels, error) {
	c, err := f.Column(name)
	if err != nil {
		return Levels{}, err
	}
	if c.Type != String {
		return FloatLevels(c.Data), nil
	}
	texts := make([]string, f.N)
	for i := range texts {
		texts[i] = f.Text(c, i)
	}
	return StringLevels(texts), nil
}

// MinMax returns the range of the numeric column name, NaNs ignored.
func (f *Frame) MinMax(name string) (min, max float64, err error) {
	c, err := f.Column(name)
	if err != nil {
		return 0, 0, err
	}
	if c.Type == String {
		return 0, 0, fmt.Errorf("%w: %s is %s", ErrUnsupportedCol, name, c.Type)
	}
	d := newDomain()
	for _, x := range c.Data {
		d.train(x)
	}
	if d.empty() {
		return math.NaN(), math.NaN(), nil
	}
	return d.min, d.max, nil
}
