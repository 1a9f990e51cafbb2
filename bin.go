package catplot

import (
	"fmt"
	"math"
	"sort"
)

// BinKey identifies a bin. The color dimension of a bin is resolved by
// the color slots inside it.
type BinKey struct {
	Split    int
	Category int
}

func (k BinKey) String() string { return fmt.Sprintf("%d/%d", k.Split, k.Category) }

func (k BinKey) less(o BinKey) bool {
	if k.Split != o.Split {
		return k.Split < o.Split
	}
	return k.Category < o.Category
}

// PointStatus tells how a record takes part in a chart.
type PointStatus int

const (
	Hidden  PointStatus = iota // not visible
	Counted                    // contributes to its bin
	Outlier                    // beyond the fences of a box plot
	NaN                        // visible but without value, drawn outside the chart area
)

var statusNames = []string{"hidden", "counted", "outlier", "nan"}

func (s PointStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("PointStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Placement is the assignment of a record to its bin.
type Placement struct {
	Bin    BinKey
	Slot   ColorSlot
	Status PointStatus
	// Stack is the rank of the record in the stacking order of its
	// bin; only meaningful if HasStack.
	Stack    int
	HasStack bool
}

// binning groups the counted records of a source by bin.
type binning struct {
	keys       []BinKey // sorted
	members    map[BinKey][]int
	placements []Placement
}

// group assigns every record of src a placement. Records with a NaN
// value are counted only if the value is not needed.
func group(src Source, opts Options, needsValue bool) binning {
	slots := opts.Slots()
	b := binning{
		members:    make(map[BinKey][]int),
		placements: make([]Placement, src.Len()),
	}
	for i := 0; i < src.Len(); i++ {
		r := src.Record(i)
		p := Placement{Bin: BinKey{Split: r.Split, Category: r.Category}, Slot: slots.Of(r)}
		switch {
		case !r.Visible:
			p.Status = Hidden
		case needsValue && math.IsNaN(r.Value):
			p.Status = NaN
		default:
			p.Status = Counted
			if _, ok := b.members[p.Bin]; !ok {
				b.keys = append(b.keys, p.Bin)
			}
			b.members[p.Bin] = append(b.members[p.Bin], i)
		}
		b.placements[i] = p
	}
	sort.Slice(b.keys, func(i, j int) bool { return b.keys[i].less(b.keys[j]) })
	return b
}

// stack orders the given members of a bin by color slot, keeping the
// record order inside a slot, and records their rank.
func (b *binning) stack(members []int, slots ColorSlots) []int {
	order := append([]int(nil), members...)
	sort.SliceStable(order, func(i, j int) bool {
		return slots.Order(b.placements[order[i]].Slot) < slots.Order(b.placements[order[j]].Slot)
	})
	for rank, i := range order {
		b.placements[i].Stack = rank
		b.placements[i].HasStack = true
	}
	return order
}
