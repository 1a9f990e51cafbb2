package catplot

import (
	"fmt"
	"math"
)

// Mapping assigns the roles of a chart to the columns of a frame. Empty
// names leave the role unused.
type Mapping struct {
	Value    string    // numeric axis
	Weight   string    // size weighting
	Category [2]string // category axes
	Case     string    // case separation
	Color    string
	Split    string // split view, one tile per level
	Selected string // non-zero values mark selected rows
	Filtered string // non-zero values mark filter marked rows
	Log      bool   // show Value logarithmically

	// Where restricts the visible rows to those whose columns have the
	// given text values.
	Where map[string]string
}

// FrameSource are the records of a frame under a mapping together with
// the level names of the categorical roles.
type FrameSource struct {
	Records

	CategoryLevels [2]Levels
	CaseLevels     Levels
	ColorLevels    Levels
	SplitLevels    Levels
	Axis           Axis
	Categories     Categories
}

// Source maps the rows of f to records.
func (f *Frame) Source(m Mapping) (*FrameSource, error) {
	fs := &FrameSource{Records: make(Records, f.N)}

	levels := func(name string) (Levels, *Column, error) {
		if name == "" {
			return Levels{}, nil, nil
		}
		c, err := f.Column(name)
		if err != nil {
			return Levels{}, nil, err
		}
		l, err := f.Levels(name)
		return l, c, err
	}
	var cat [2]*Column
	var err error
	for k := range m.Category {
		if fs.CategoryLevels[k], cat[k], err = levels(m.Category[k]); err != nil {
			return nil, err
		}
	}
	caseLevels, caseCol, err := levels(m.Case)
	if err != nil {
		return nil, err
	}
	colorLevels, colorCol, err := levels(m.Color)
	if err != nil {
		return nil, err
	}
	splitLevels, splitCol, err := levels(m.Split)
	if err != nil {
		return nil, err
	}
	fs.CaseLevels, fs.ColorLevels, fs.SplitLevels = caseLevels, colorLevels, splitLevels

	numeric := func(name string) (*Column, error) {
		if name == "" {
			return nil, nil
		}
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Type == String {
			return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedCol, name, c.Type)
		}
		return c, nil
	}
	value, err := numeric(m.Value)
	if err != nil {
		return nil, err
	}
	weight, err := numeric(m.Weight)
	if err != nil {
		return nil, err
	}
	selected, err := numeric(m.Selected)
	if err != nil {
		return nil, err
	}
	filtered, err := numeric(m.Filtered)
	if err != nil {
		return nil, err
	}
	// Text columns are compared by pool index, -1 matches no row.
	where := make(map[*Column]string, len(m.Where))
	whereIdx := make(map[*Column]float64, len(m.Where))
	for name, want := range m.Where {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Type == String {
			whereIdx[c] = float64(f.Pool.Find(want))
			continue
		}
		where[c] = want
	}

	fs.Categories = Categories{
		Counts: [2]int{fs.CategoryLevels[0].Len(), fs.CategoryLevels[1].Len()},
		Cases:  caseLevels.Len(),
	}
	if fs.Categories.Cases > 1 {
		fs.Categories.CaseSpacing = 1 / float64(fs.Categories.Cases)
	}

	index := func(l Levels, c *Column, i int) int {
		if c == nil {
			return 0
		}
		// Missing values share the first level.
		return max(0, l.Index(f.Text(c, i)))
	}
	d, full := newDomain(), newDomain()
	for i := range fs.Records {
		r := Record{Visible: true, Value: math.NaN(), Weight: 1, InFocus: true}
		for c, want := range where {
			if f.Text(c, i) != want {
				r.Visible = false
			}
		}
		for c, idx := range whereIdx {
			if c.Data[i] != idx {
				r.Visible = false
			}
		}
		if value != nil {
			r.Value = value.Data[i]
			if m.Log {
				r.Value = relog(r.Value)
			}
		}
		if weight != nil {
			r.Weight = weight.Data[i]
		}
		r.Category = fs.Categories.Index(
			index(fs.CategoryLevels[0], cat[0], i),
			index(fs.CategoryLevels[1], cat[1], i),
			index(caseLevels, caseCol, i))
		r.Color = index(colorLevels, colorCol, i)
		r.Split = index(splitLevels, splitCol, i)
		r.Selected = selected != nil && selected.Data[i] != 0 && !math.IsNaN(selected.Data[i])
		r.Filtered = filtered != nil && filtered.Data[i] != 0 && !math.IsNaN(filtered.Data[i])
		fs.Records[i] = r

		full.train(r.Value)
		if r.Visible {
			d.train(r.Value)
		}
	}

	fs.Axis = Axis{Log: m.Log, Integer: value != nil && value.Type == Int}
	if !full.empty() {
		fs.Axis.FullMin, fs.Axis.FullMax = full.min, full.max
	}
	if !d.empty() {
		fs.Axis.Min, fs.Axis.Max = d.min, d.max
	}
	return fs, nil
}

// Options returns chart options matching the mapping: the value axis
// spans the visible values, one tile per split level side by side and
// one base color per color level.
func (fs *FrameSource) Options() Options {
	return Options{
		Axis:       fs.Axis,
		Categories: fs.Categories,
		Split:      SplitView{Rows: 1, Cols: atLeastOne(fs.SplitLevels.Len())},
		Colors:     atLeastOne(fs.ColorLevels.Len()),
	}
}

// CategoryName returns the text of the category index i.
func (fs *FrameSource) CategoryName(i int) string {
	c0, c1, cs := fs.Categories.Decode(i)
	name := ""
	add := func(l Levels, k int) {
		if l.Len() == 0 || k < 0 || k >= l.Len() {
			return
		}
		if name != "" {
			name += " / "
		}
		name += l.Names[k]
	}
	add(fs.CategoryLevels[0], c0)
	add(fs.CategoryLevels[1], c1)
	add(fs.CaseLevels, cs)
	if name == "" {
		name = "all"
	}
	return name
}
