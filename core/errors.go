package core

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	ErrConfiguration      = errors.New("configuration error")
	ErrNumericalAssertion = errors.New("numerical assertion failure")
)

// ConfigurationError reports a malformed circuit program or a call that does not
// match the program it is given. It is fatal to the estimate it occurs in.
type ConfigurationError struct {
	Op     string
	Reason string
	Err    error
}

func NewConfigurationError(op, reason string) *ConfigurationError {
	return &ConfigurationError{Op: op, Reason: reason}
}

func WrapConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Reason: err.Error(), Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Op, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NumericalAssertionError means a simulated state lost its normalization.
// Gates are unitary, so this only happens with a broken kernel.
type NumericalAssertionError struct {
	Norm      float64
	Tolerance float64
}

func (e *NumericalAssertionError) Error() string {
	return fmt.Sprintf("%s: squared norm %.15g deviates from 1 by more than %g",
		ErrNumericalAssertion, e.Norm, e.Tolerance)
}

func (e *NumericalAssertionError) Is(target error) bool {
	return target == ErrNumericalAssertion
}
