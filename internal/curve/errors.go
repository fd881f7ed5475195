package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrPoleDomain indicates a sampling range that reaches or crosses a pole.
	ErrPoleDomain = errors.New("curve: latitude range must lie strictly inside (-pi/2, pi/2)")

	// ErrInvalidRange indicates an empty range or a non-positive step.
	ErrInvalidRange = errors.New("curve: invalid sampling range")

	// ErrParameterBounds indicates a curve parameter outside its valid range.
	ErrParameterBounds = errors.New("curve: parameter out of valid bounds")
)

// SampleError reports the sample that produced a non-finite point.
type SampleError struct {
	Ribbon  int
	T       float64
	Wrapped error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("ribbon %d at t=%.4f: %v", e.Ribbon, e.T, e.Wrapped)
}

func (e *SampleError) Unwrap() error {
	return e.Wrapped
}
