package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a construction parameter outside its valid range.
var ErrInvalidParameter = errors.New("physics: invalid parameter")

// ParameterError names the offending parameter.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s, got %g", ErrInvalidParameter, e.Name, e.Reason, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
