// Package slider maps a fixed-resolution integer device position onto an
// arbitrary floating-point range. Input devices such as UI sliders natively
// report integer positions only; Slider gives such a device continuous-range
// semantics without changing its native resolution.
package slider

import (
	"errors"
	"fmt"
	"math"
)

// DefaultResolution is the number of discrete steps a Slider reports by
// default.
const DefaultResolution = 10000

// ErrDegenerateRange is returned when an operation would require a zero-width
// value range (minimum equal to maximum).
var ErrDegenerateRange = errors.New("degenerate range: minimum equals maximum")

// Slider converts between a raw integer position in [0, resolution] and a
// value in [min, max]. The resolution is fixed at construction; the bounds
// are mutable. A reversed range (min > max) is a valid flipped mapping.
type Slider struct {
	resolution int
	minValue   float64
	maxValue   float64
	pos        int
}

// New returns a Slider with the default resolution and a 0-100 range.
func New() *Slider {
	return &Slider{
		resolution: DefaultResolution,
		minValue:   0.0,
		maxValue:   100.0,
	}
}

// NewWithResolution returns a Slider with the given number of discrete steps
// and a 0-100 range.
func NewWithResolution(resolution int) (*Slider, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", resolution)
	}
	return &Slider{
		resolution: resolution,
		minValue:   0.0,
		maxValue:   100.0,
	}, nil
}

// Resolution returns the fixed number of discrete steps.
func (s *Slider) Resolution() int { return s.resolution }

// Min returns the lower bound of the value range.
func (s *Slider) Min() float64 { return s.minValue }

// Max returns the upper bound of the value range.
func (s *Slider) Max() float64 { return s.maxValue }

// Pos returns the raw integer position, always in [0, resolution].
func (s *Slider) Pos() int { return s.pos }

// SetPos sets the raw integer position, clamped into [0, resolution].
func (s *Slider) SetPos(p int) {
	s.pos = clamp(p, 0, s.resolution)
}

// Value returns the position mapped into the value range.
func (s *Slider) Value() float64 {
	return float64(s.pos)/float64(s.resolution)*(s.maxValue-s.minValue) + s.minValue
}

// Proportion returns how far along the range the current value sits, in
// [0, 1] regardless of range direction.
func (s *Slider) Proportion() float64 {
	return (s.Value() - s.minValue) / (s.maxValue - s.minValue)
}

// SetValue sets the raw position to the closest representable step for v,
// clamped to the range. The round trip through Value is accurate to within
// one quantization step, (max-min)/resolution.
func (s *Slider) SetValue(v float64) error {
	if s.minValue == s.maxValue {
		return ErrDegenerateRange
	}
	p := math.Round((v - s.minValue) / (s.maxValue - s.minValue) * float64(s.resolution))
	s.pos = clamp(int(p), 0, s.resolution)
	return nil
}

// SetRange replaces both bounds, preserving the current value rather than
// the raw position: the value under the old bounds is re-quantized under the
// new ones, so it survives the change to within one quantization step. A
// zero-width range is rejected with ErrDegenerateRange and the bounds are
// left untouched.
func (s *Slider) SetRange(min, max float64) error {
	if min == max {
		return ErrDegenerateRange
	}
	old := s.Value()
	s.minValue = min
	s.maxValue = max
	return s.SetValue(old)
}

// SetMin replaces the lower bound, holding the upper bound.
func (s *Slider) SetMin(min float64) error {
	return s.SetRange(min, s.maxValue)
}

// SetMax replaces the upper bound, holding the lower bound.
func (s *Slider) SetMax(max float64) error {
	return s.SetRange(s.minValue, max)
}

// Step returns the smallest representable change in value, which may be
// negative for a reversed range.
func (s *Slider) Step() float64 {
	return (s.maxValue - s.minValue) / float64(s.resolution)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
