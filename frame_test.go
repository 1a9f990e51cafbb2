package catplot

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Ops struct {
	Age     int
	Origin  string
	Weight  float64
	Height  float64
	Special []byte
}

func (o Ops) BMI() float64 {
	return o.Weight / (o.Height * o.Height)
}

func (o Ops) Group() int {
	return 10*(o.Age/10) + 5
}

func (o Ops) Country() string {
	o2c := map[string]string{
		"ch": "Schweiz",
		"de": "Deutschland",
		"uk": "England",
	}
	return o2c[o.Origin]
}

func (o Ops) Other() bool {
	return true
}

func (o Ops) Other2(a int) int {
	return 0
}

var measurement = []Ops{
	{Age: 20, Origin: "de", Weight: 80, Height: 1.88},
	{Age: 22, Origin: "de", Weight: 85, Height: 1.85},
	{Age: 20, Origin: "de", Weight: 90, Height: 1.95},
	{Age: 25, Origin: "de", Weight: 90, Height: 1.72},

	{Age: 20, Origin: "ch", Weight: 77, Height: 1.78},
	{Age: 20, Origin: "ch", Weight: 82, Height: 1.75},
	{Age: 28, Origin: "ch", Weight: 85, Height: 1.80},
	{Age: 20, Origin: "ch", Weight: 84, Height: 1.62},

	{Age: 31, Origin: "de", Weight: 85, Height: 1.88},
	{Age: 30, Origin: "de", Weight: 90, Height: 1.85},
	{Age: 30, Origin: "de", Weight: 99, Height: 1.95},
	{Age: 42, Origin: "de", Weight: 95, Height: 1.72},

	{Age: 30, Origin: "ch", Weight: 80, Height: 1.78},
	{Age: 30, Origin: "ch", Weight: 85, Height: 1.75},
	{Age: 37, Origin: "ch", Weight: 87, Height: 1.80},
	{Age: 47, Origin: "ch", Weight: 90, Height: 1.62},

	{Age: 42, Origin: "uk", Weight: 60, Height: 1.68},
	{Age: 42, Origin: "uk", Weight: 65, Height: 1.65},
	{Age: 44, Origin: "uk", Weight: 55, Height: 1.52},
	{Age: 44, Origin: "uk", Weight: 70, Height: 1.72},
}

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(measurement)
	require.NoError(t, err)

	if f.N != 20 {
		t.Errorf("Got %d elements, want 20", f.N)
	}
	want := []string{"Age", "Origin", "Weight", "Height", "BMI", "Country", "Group", "Other"}
	assert.Equal(t, want, f.Names)

	for name, typ := range map[string]FieldType{"Age": Int, "Origin": String, "Weight": Float, "Other": Int, "Country": String} {
		c, err := f.Column(name)
		require.NoError(t, err)
		if c.Type != typ {
			t.Errorf("%s: Got %s, want %s", name, c.Type, typ)
		}
	}
	assert.Equal(t, "England", f.Text(f.Columns["Country"], 17))
	assert.InDelta(t, 80/(1.88*1.88), f.Columns["BMI"].Data[0], 1e-12)

	_, err = NewFrame(42)
	assert.Error(t, err)
	_, err = NewFrame([]int{1, 2})
	assert.Error(t, err)
	_, err = f.Column("Shoe")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestFrameLevels(t *testing.T) {
	f, _ := NewFrame(measurement)
	ageLevels, err := f.Levels("Age")
	require.NoError(t, err)
	if ageLevels.Len() != 10 || ageLevels.Names[0] != "20" || ageLevels.Names[9] != "47" {
		t.Errorf("Got %v", ageLevels.Names)
	}

	origLevels, err := f.Levels("Origin")
	require.NoError(t, err)
	assert.Equal(t, []string{"ch", "de", "uk"}, origLevels.Names)
	assert.Equal(t, 2, origLevels.Index("uk"))
	assert.Equal(t, -1, origLevels.Index("fr"))
}

func TestFrameMinMax(t *testing.T) {
	f, _ := NewFrame(measurement)

	min, max, err := f.MinMax("Weight")
	require.NoError(t, err)
	if min != 55 || max != 99 {
		t.Errorf("Got %g..%g, want 55..99", min, max)
	}
	_, _, err = f.MinMax("Origin")
	assert.ErrorIs(t, err, ErrUnsupportedCol)
}

func TestReadCSV(t *testing.T) {
	in := "name, value, count, group\na,1,3,x\nb,2.5,4,y\nc,,5,x\n"
	f, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, f.N)
	assert.Equal(t, []string{"name", "value", "count", "group"}, f.Names)
	assert.Equal(t, Float, f.Columns["value"].Type)
	assert.Equal(t, Int, f.Columns["count"].Type)
	assert.Equal(t, String, f.Columns["group"].Type)
	assert.True(t, math.IsNaN(f.Columns["value"].Data[2]))
	assert.Equal(t, "y", f.Text(f.Columns["group"], 1))

	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFrameSource(t *testing.T) {
	f, _ := NewFrame(measurement)
	fs, err := f.Source(Mapping{Value: "Weight", Category: [2]string{"Origin"}, Color: "Group"})
	require.NoError(t, err)

	assert.Equal(t, 20, fs.Len())
	assert.Equal(t, [2]int{3, 0}, fs.Categories.Counts)
	assert.Equal(t, 2, fs.Record(16).Category)
	assert.Equal(t, 1, fs.Record(0).Category)
	assert.Equal(t, []string{"25", "35", "45"}, fs.ColorLevels.Names)
	assert.Equal(t, 2, fs.Record(16).Color)
	assert.Equal(t, "uk", fs.CategoryName(2))
	assert.Equal(t, Axis{Min: 55, Max: 99, FullMin: 55, FullMax: 99}, fs.Axis)

	c := New(ChartType{Kind: Bar, Mode: Mean}, fs.Options(), nil)
	res, err := c.Calculate(fs)
	require.NoError(t, err)
	require.Len(t, res.BarPie.Bins, 3)
	for i, want := range []float64{83.75, 89.25, 62.5} {
		if got := res.BarPie.Bins[i].Value; math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: Got %g, want %g", fs.CategoryName(i), got, want)
		}
	}
}

func TestFrameSourceWhere(t *testing.T) {
	f, _ := NewFrame(measurement)
	fs, err := f.Source(Mapping{Value: "Weight", Split: "Origin", Where: map[string]string{"Origin": "uk"}, Log: true})
	require.NoError(t, err)

	visible := 0
	for _, r := range fs.Records {
		if r.Visible {
			visible++
		}
	}
	assert.Equal(t, 4, visible)
	assert.InDelta(t, math.Log10(55), fs.Axis.Min, 1e-12)
	assert.InDelta(t, math.Log10(70), fs.Axis.Max, 1e-12)
	assert.InDelta(t, math.Log10(99), fs.Axis.FullMax, 1e-12)
	assert.Equal(t, 3, fs.Options().Split.Cols)
	assert.Equal(t, "all", fs.CategoryName(0))

	_, err = f.Source(Mapping{Value: "Origin"})
	assert.ErrorIs(t, err, ErrUnsupportedCol)
	_, err = f.Source(Mapping{Color: "Shoe"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
