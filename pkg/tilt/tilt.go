// Package tilt resolves the four flip toggles of the viewer into the
// pair of tilt angles pushed to the renderer.
package tilt

// Flip identifies one of the four flip toggles
type Flip int

const (
	XYPlus Flip = iota
	XYMinus
	YZPlus
	YZMinus
)

var flipNames = [...]string{"+XY", "-XY", "+YZ", "-YZ"}

func (f Flip) String() string {
	if f < 0 || int(f) >= len(flipNames) {
		return "unknown"
	}
	return flipNames[f]
}

// FlipState holds the four independent flip toggles
type FlipState struct {
	XYPlus  bool
	XYMinus bool
	YZPlus  bool
	YZMinus bool
}

// Angles is the tilt pair in degrees
type Angles struct {
	XY float64
	YZ float64
}

// Flip angles in degrees
const (
	QuarterTurn = 90.0
	HalfTurn    = 180.0
)

// Resolve computes the tilt pair for a flip state.
// Opposite flips on the same axis cancel. When both axes end up tilted the
// pair collapses to a single half turn about XY.
func Resolve(s FlipState) Angles {
	var a Angles
	if s.XYPlus {
		a.XY += QuarterTurn
	}
	if s.XYMinus {
		a.XY -= QuarterTurn
	}
	if s.YZPlus {
		a.YZ += QuarterTurn
	}
	if s.YZMinus {
		a.YZ -= QuarterTurn
	}

	if a.XY != 0 && a.YZ != 0 {
		return Angles{XY: HalfTurn, YZ: 0}
	}
	return a
}

// Setter receives the resolved tilt pair
type Setter interface {
	SetTiltXY(deg float64)
	SetTiltYZ(deg float64)
}

// Combinator owns the flip state and pushes the resolved angles on every toggle
type Combinator struct {
	state  FlipState
	target Setter
}

// NewCombinator creates a combinator with all flips off
func NewCombinator(target Setter) *Combinator {
	return &Combinator{target: target}
}

// State returns the current flip toggles
func (c *Combinator) State() FlipState {
	return c.state
}

// Toggle sets one flip and pushes the recomputed angles
func (c *Combinator) Toggle(f Flip, on bool) Angles {
	switch f {
	case XYPlus:
		c.state.XYPlus = on
	case XYMinus:
		c.state.XYMinus = on
	case YZPlus:
		c.state.YZPlus = on
	case YZMinus:
		c.state.YZMinus = on
	}
	return c.Apply()
}

// Reset turns all flips off and pushes the angles
func (c *Combinator) Reset() Angles {
	c.state = FlipState{}
	return c.Apply()
}

// Apply pushes the angles for the current state
func (c *Combinator) Apply() Angles {
	a := Resolve(c.state)
	c.target.SetTiltXY(a.XY)
	c.target.SetTiltYZ(a.YZ)
	return a
}
