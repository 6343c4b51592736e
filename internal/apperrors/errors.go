package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoSales indicates that a guest ledger contains no qualifying sale
// transactions. A receipt without line items must never be assembled, so
// generation fails immediately with this error.
var ErrNoSales = errors.New("no sale transactions on tab")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationFailure aggregates the error-severity findings produced by the
// receipt validator. A receipt carrying any of these findings must not reach
// the document sink.
type ValidationFailure struct {
	Findings []string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("receipt validation failed: %s", strings.Join(e.Findings, "; "))
}

// Is lets errors.Is match a ValidationFailure against the ErrValidation
// sentinel so handlers can map it to a 4xx status without type-asserting.
func (e *ValidationFailure) Is(target error) bool {
	return target == ErrValidation
}
