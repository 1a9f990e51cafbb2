package catplot

import (
	"sort"
	"strconv"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Elements returns the sorted elements of s.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Elements returns the sorted elements of s.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}

// -------------------------------------------------------------------------
// Levels

// Levels are the distinct values of a categorical column in ascending
// order. Numeric columns are ordered by value, not by their text.
type Levels struct {
	Names []string
	index map[string]int
}

func newLevels(names []string) Levels {
	l := Levels{Names: names, index: make(map[string]int, len(names))}
	for i, n := range names {
		l.index[n] = i
	}
	return l
}

// StringLevels builds the levels of the given strings.
func StringLevels(values []string) Levels {
	return newLevels(NewStringSetFrom(values).Elements())
}

// FloatLevels builds the levels of the given numbers. NaN is no level.
func FloatLevels(values []float64) Levels {
	s := NewFloatSet()
	for _, v := range values {
		if v == v {
			s.Add(v)
		}
	}
	elems := s.Elements()
	names := make([]string, len(elems))
	for i, x := range elems {
		names[i] = formatLevel(x)
	}
	return newLevels(names)
}

func formatLevel(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// Len is the number of levels.
func (l Levels) Len() int { return len(l.Names) }

// Index returns the position of level name or -1.
func (l Levels) Index(name string) int {
	if i, ok := l.index[name]; ok {
		return i
	}
	return -1
}
