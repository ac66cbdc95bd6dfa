package utils

import "github.com/pkg/errors"

// NewContractViolationError signals a programmer error in the shape of the input data
// (an empty path, a zero control interval count, a missing guess point) rather than a
// solver failure. The builder has no way to recover from these; it aborts construction.
func NewContractViolationError(msg string) error {
	return errors.Errorf("trajopt: contract violation: %s", msg)
}
