package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNonTerminating indicates the rocket never came back down within the
	// step ceiling.
	ErrNonTerminating = errors.New("sim: simulation did not terminate")

	// ErrInvalidState indicates a NaN or Inf in a sample.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	ErrInvalidConfig = errors.New("sim: invalid config")
)

// SimulationError wraps an error with the step it occurred at.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
