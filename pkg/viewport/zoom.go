package viewport

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultZoomSteps is the stepped-zoom table.
var DefaultZoomSteps = []float64{1, 1.25, 1.5, 2, 2.5, 3, 4, 5}

// ErrInvalidZoomSteps is returned for an empty, non-positive or
// non-ascending zoom table.
var ErrInvalidZoomSteps = errors.New("viewport: invalid zoom steps")

// ZoomTable walks an ascending list of scales one step at a time and holds
// at the last entry.
type ZoomTable struct {
	steps []float64
	i     int
}

// NewZoomTable validates steps and returns a table positioned at the first
// entry. A nil slice selects DefaultZoomSteps.
func NewZoomTable(steps []float64) (*ZoomTable, error) {
	if steps == nil {
		steps = DefaultZoomSteps
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidZoomSteps)
	}
	for i, s := range steps {
		if s <= 0 {
			return nil, fmt.Errorf("%w: step %d is %v", ErrInvalidZoomSteps, i, s)
		}
		if i > 0 && s <= steps[i-1] {
			return nil, fmt.Errorf("%w: step %d (%v) not above %v", ErrInvalidZoomSteps, i, s, steps[i-1])
		}
	}
	return &ZoomTable{steps: slices.Clone(steps)}, nil
}

// Current returns the scale at the current position.
func (z *ZoomTable) Current() float64 { return z.steps[z.i] }

// Index returns the current position.
func (z *ZoomTable) Index() int { return z.i }

// AtEnd reports whether the table is at its last entry.
func (z *ZoomTable) AtEnd() bool { return z.i == len(z.steps)-1 }

// Step advances one entry, holding at the end, and returns the new scale.
func (z *ZoomTable) Step() float64 {
	if !z.AtEnd() {
		z.i++
	}
	return z.steps[z.i]
}

// StepFrom moves to the first entry above scale k, holding at the last
// entry, and returns the new scale. Hosts use it when the scale may have
// changed outside the table, for example through wheel zoom.
func (z *ZoomTable) StepFrom(k float64) float64 {
	i, found := slices.BinarySearch(z.steps, k)
	if found {
		i++
	}
	z.i = min(i, len(z.steps)-1)
	return z.steps[z.i]
}

// Reset returns to the first entry.
func (z *ZoomTable) Reset() { z.i = 0 }

// Steps returns a copy of the table.
func (z *ZoomTable) Steps() []float64 { return slices.Clone(z.steps) }
