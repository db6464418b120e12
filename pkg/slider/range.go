package slider

// Control identifies one of the viewer's sliders
type Control int

const (
	Clip Control = iota
	Zoom
	Rotation
	Tilt
	Emission
	Absorption
)

var controlNames = [...]string{"clip", "zoom", "rotation", "tilt", "emission", "absorption"}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return "unknown"
	}
	return controlNames[c]
}

// Slider holds the raw range and current raw value of one UI slider
type Slider struct {
	Min        int // raw minimum
	Max        int // raw maximum
	SingleStep int
	PageStep   int
	Initial    int // raw value the slider starts at
	Value      int
}

// New creates a slider over the physical range [min, max] starting at value.
// Page step and tick interval are a tenth of the range.
func New(min, max, value int) Slider {
	page := (max - min) / 10 * Factor
	initial := Quantize(min, max, value)
	return Slider{
		Min:        min * Factor,
		Max:        max * Factor,
		SingleStep: Factor,
		PageStep:   page,
		Initial:    initial,
		Value:      initial,
	}
}

// SetValue moves the slider to raw, clamped to its range, and returns the stored value
func (s *Slider) SetValue(raw int) int {
	if raw < s.Min {
		raw = s.Min
	}
	if raw > s.Max {
		raw = s.Max
	}
	s.Value = raw
	return raw
}

// Reset moves the slider back to its initial value
func (s *Slider) Reset() int {
	s.Value = s.Initial
	return s.Value
}

// Step moves the slider by n single steps
func (s *Slider) Step(n int) int {
	return s.SetValue(s.Value + n*s.SingleStep)
}

// Page moves the slider by n page steps
func (s *Slider) Page(n int) int {
	return s.SetValue(s.Value + n*s.PageStep)
}

// Defaults returns the sliders of the viewer with their physical ranges and start values
func Defaults() map[Control]Slider {
	return map[Control]Slider{
		Clip:       New(0, 100, 0),
		Zoom:       New(0, 100, 0),
		Rotation:   New(-180, 180, 0),
		Tilt:       New(-90, 90, 0),
		Emission:   New(0, 100, 25),
		Absorption: New(0, 100, 25),
	}
}
