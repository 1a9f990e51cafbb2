package catplot

import "fmt"

// SlotKind distinguishes base colors from the synthetic colors of
// selected and filter marked records.
type SlotKind int

const (
	BaseColor SlotKind = iota
	SelectedColor
	FilteredColor
)

// ColorSlot is the color category of a record: one of the base colors,
// the selection color or the filter color, each of them optionally in
// a dimmed variant for records out of focus.
type ColorSlot struct {
	Kind   SlotKind
	Index  int // base color index, 0 for the synthetic kinds
	Dimmed bool
}

func Base(i int) ColorSlot { return ColorSlot{Kind: BaseColor, Index: i} }
func Selected() ColorSlot  { return ColorSlot{Kind: SelectedColor} }
func Filtered() ColorSlot  { return ColorSlot{Kind: FilteredColor} }

// Dim returns the dimmed variant of s.
func (s ColorSlot) Dim() ColorSlot {
	s.Dimmed = true
	return s
}

func (s ColorSlot) String() string {
	var t string
	switch s.Kind {
	case SelectedColor:
		t = "selected"
	case FilteredColor:
		t = "filtered"
	default:
		t = fmt.Sprintf("color%d", s.Index)
	}
	if s.Dimmed {
		t += "(dimmed)"
	}
	return t
}

// ColorSlots defines the stacking order of the color slots: the base
// colors in list order, then selected, then filtered. With focus
// highlighting the dimmed copies of these follow in the same order.
type ColorSlots struct {
	Colors    int
	Highlight bool
}

// colors is the number of base color slots. Without a color column all
// records share the first base color.
func (cs ColorSlots) colors() int { return atLeastOne(cs.Colors) }

func (cs ColorSlots) group() int { return cs.colors() + 2 }

// Len is the number of slots.
func (cs ColorSlots) Len() int {
	if cs.Highlight {
		return 2 * cs.group()
	}
	return cs.group()
}

// Order returns the stacking position of s. Base colors outside the
// configured range fall back to the first base color.
func (cs ColorSlots) Order(s ColorSlot) int {
	var o int
	switch s.Kind {
	case SelectedColor:
		o = cs.group() - 2
	case FilteredColor:
		o = cs.group() - 1
	default:
		if s.Index >= 0 && s.Index < cs.colors() {
			o = s.Index
		}
	}
	if s.Dimmed && cs.Highlight {
		o += cs.group()
	}
	return o
}

// Slot is the inverse of Order.
func (cs ColorSlots) Slot(o int) ColorSlot {
	var s ColorSlot
	g := cs.group()
	if cs.Highlight && o >= g {
		s.Dimmed = true
		o -= g
	}
	switch {
	case o == g-2:
		s.Kind = SelectedColor
	case o == g-1:
		s.Kind = FilteredColor
	default:
		s.Index = o
	}
	return s
}

// Of returns the slot of record r. Selection takes precedence over the
// filter mark.
func (cs ColorSlots) Of(r Record) ColorSlot {
	var s ColorSlot
	switch {
	case r.Selected:
		s = Selected()
	case r.Filtered:
		s = Filtered()
	default:
		s = Base(r.Color)
	}
	if cs.Highlight && !r.InFocus {
		s = s.Dim()
	}
	return s
}
