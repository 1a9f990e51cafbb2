package catplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSlotOrder(t *testing.T) {
	cs := ColorSlots{Colors: 3, Highlight: true}
	want := []ColorSlot{
		Base(0), Base(1), Base(2), Selected(), Filtered(),
		Base(0).Dim(), Base(1).Dim(), Base(2).Dim(), Selected().Dim(), Filtered().Dim(),
	}
	if cs.Len() != len(want) {
		t.Fatalf("Got %d slots, want %d", cs.Len(), len(want))
	}
	for o, s := range want {
		if got := cs.Order(s); got != o {
			t.Errorf("Order(%s): Got %d, want %d", s, got, o)
		}
		if got := cs.Slot(o); got != s {
			t.Errorf("Slot(%d): Got %s, want %s", o, got, s)
		}
	}

	plain := ColorSlots{Colors: 2}
	assert.Equal(t, 4, plain.Len())
	assert.Equal(t, 1, plain.Order(Base(1).Dim()), "no dimmed copies without highlighting")
	assert.Equal(t, 0, plain.Order(Base(7)))
}

func TestColorSlotsWithoutColors(t *testing.T) {
	cs := ColorSlots{}
	assert.Equal(t, 3, cs.Len())
	if b, s := cs.Order(Base(0)), cs.Order(Selected()); b == s {
		t.Errorf("Base and Selected share slot %d", b)
	}
	assert.Equal(t, Base(0), cs.Slot(cs.Order(Base(0))))
	assert.Equal(t, Selected(), cs.Slot(cs.Order(Selected())))
	assert.Equal(t, Filtered(), cs.Slot(cs.Order(Filtered())))
}

func TestColorSlotOf(t *testing.T) {
	cs := ColorSlots{Colors: 2, Highlight: true}
	assert.Equal(t, Base(1), cs.Of(Record{Color: 1, InFocus: true}))
	assert.Equal(t, Selected(), cs.Of(Record{Color: 1, Selected: true, Filtered: true, InFocus: true}))
	assert.Equal(t, Filtered().Dim(), cs.Of(Record{Filtered: true}))
	assert.Equal(t, "color1(dimmed)", Base(1).Dim().String())
	assert.Equal(t, "selected", Selected().String())

	cs.Highlight = false
	assert.Equal(t, Base(0), cs.Of(Record{}))
}
