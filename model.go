package viz

import "fmt"

// Model is the embeddable base of every synchronizable front-end entity.
//
// Entities declare their fields as explicit struct members with typed
// setters; each setter validates its value, commits it, and forwards the
// change through the entity's FrontEnd binding. Model itself carries only
// the state shared by all entities: the frozen flag.
//
// A frozen model no longer accepts writes. Freezing is used for
// value-like entities that must support safe aliasing and therefore must
// not participate in the change-notification protocol.
type Model struct {
	frozen bool
}

// Freeze makes the model immutable. Every subsequent setter call fails
// with ErrFrozen. Freezing cannot be undone.
func (m *Model) Freeze() {
	m.frozen = true
}

// Frozen reports whether the model has been frozen.
func (m *Model) Frozen() bool {
	return m.frozen
}

// mutable is the first check of every setter.
func (m *Model) mutable() error {
	if m.frozen {
		return ErrFrozen
	}
	return nil
}

// unitRange validates v against the closed interval [0, 1].
func unitRange(field string, v float64) error {
	if v < 0 || v > 1 {
		return &ValidationError{Field: field, Value: v, Reason: "must be in [0, 1]"}
	}
	return nil
}

// positive validates v against the open interval (0, +inf).
func positive(field string, v float64) error {
	if v <= 0 {
		return &ValidationError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}

// positiveSize validates a width/height pair.
func positiveSize(field string, w, h int) error {
	if w <= 0 || h <= 0 {
		return &ValidationError{
			Field:  field,
			Value:  fmt.Sprintf("%dx%d", w, h),
			Reason: "both dimensions must be > 0",
		}
	}
	return nil
}

// notNil validates a required reference.
func notNil(field string, v any) error {
	if v == nil {
		return &ValidationError{Field: field, Value: nil, Reason: "must not be nil"}
	}
	return nil
}
