package errors

import (
	"fmt"

	"github.com/luxeshop/storefront-api/internal/domain"
)

// ErrValidation indicates a missing or malformed required field.
// Not retryable without changing input.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

// ErrInvalidStateTransition indicates an operation not legal in the
// order's current lifecycle state.
type ErrInvalidStateTransition struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrEmptyCart indicates a checkout attempt with no cart lines.
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrUnauthenticated indicates a missing user identity.
type ErrUnauthenticated struct {
	Message string
}

func (e *ErrUnauthenticated) Error() string {
	if e.Message == "" {
		return "unauthenticated"
	}
	return e.Message
}

// ErrNotFound indicates an unknown resource id.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ErrUpstream wraps a failure of the external data store or network.
// Unlike the other kinds it is transient and caller-retryable.
type ErrUpstream struct {
	Op  string
	Err error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
