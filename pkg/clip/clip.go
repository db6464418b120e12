// Package clip accumulates interactively captured clipping planes.
package clip

import (
	"github.com/philipparndt/govox/pkg/geometry"
)

// Capacity is the number of clip planes the renderer supports
const Capacity = 6

// Slot is one captured clipping plane
type Slot struct {
	Index   int
	Plane   geometry.Plane
	Enabled bool
}

// Target is the renderer side of the accumulator
type Target interface {
	SetClipPlane(index int, plane geometry.Plane)
	EnableClipPlane(index int, on bool)
	DisableClipPlanes()
}

// Accumulator stores up to Capacity planes in capture order.
// Slots are assigned sequentially and never reused before a full Clear.
type Accumulator struct {
	slots  [Capacity]Slot
	count  int
	target Target
	reset  func() // moves the clip slider back to 0
}

// NewAccumulator creates an empty accumulator. reset may be nil.
func NewAccumulator(target Target, reset func()) *Accumulator {
	a := &Accumulator{target: target, reset: reset}
	for i := range a.slots {
		a.slots[i].Index = i
	}
	return a
}

// Count returns the number of enabled slots
func (a *Accumulator) Count() int {
	return a.count
}

// Slots returns a copy of all slots
func (a *Accumulator) Slots() [Capacity]Slot {
	return a.slots
}

// Tack captures near into the next free slot. Filling the last slot clears
// the whole accumulator, the new plane included. It reports whether that
// auto-clear happened.
func (a *Accumulator) Tack(near geometry.Plane) bool {
	idx := a.count
	a.slots[idx] = Slot{Index: idx, Plane: near, Enabled: true}
	a.target.SetClipPlane(idx, near)
	a.target.EnableClipPlane(idx, true)
	a.resetSlider()

	a.count++
	if a.count >= Capacity {
		a.Clear()
		return true
	}
	return false
}

// Clear disables every slot and resets the clip slider
func (a *Accumulator) Clear() {
	a.target.DisableClipPlanes()
	for i := range a.slots {
		a.slots[i].Enabled = false
	}
	a.count = 0
	a.resetSlider()
}

func (a *Accumulator) resetSlider() {
	if a.reset != nil {
		a.reset()
	}
}
