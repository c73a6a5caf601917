package viz

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the model core.
var (
	// ErrFrozen is returned when a field of a frozen model is mutated.
	ErrFrozen = errors.New("viz: model is frozen")

	// ErrAlreadyBound is returned when Bind is called on a front end that
	// already has a backend. Rebinding is not supported; detaching is
	// equivalent to discarding the front end.
	ErrAlreadyBound = errors.New("viz: front end is already bound to a backend")

	// ErrSingular is returned by Transform.Inv and Transform.IMap when the
	// matrix has no inverse.
	ErrSingular = errors.New("viz: matrix is singular")

	// ErrProviderUnknown is returned by OpenProvider when no provider with
	// the requested name has been registered.
	ErrProviderUnknown = errors.New("viz: unknown provider")

	// ErrNoProvider is returned by DefaultProvider when no provider has
	// been registered at all.
	ErrNoProvider = errors.New("viz: no provider registered")
)

// ShapeError reports input that cannot be coerced to the shape an
// operation expects (a 4x4 matrix, a vector of at most 4 components, a
// nonzero axis). It is always detected before any mutation occurs.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("viz: expected %s, got %s", e.Want, e.Got)
}

// ValidationError reports a field value that failed its declared
// constraint. The field keeps its previous value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("viz: invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}
