package viz

// FrontEnd associates one front-end entity with at most one backend
// adapter of protocol type B. It is embedded by every bindable entity.
//
// A front end starts unbound and is a fully functional data object in
// that state (headless mode): setters validate and commit values without
// any backend call. Once bound, every committed field change is forwarded
// to the backend through its protocol method. Rebinding is not supported;
// detaching is equivalent to discarding the front end.
//
// The backend reference is a non-owning association: the front end does
// not manage the backend's lifetime beyond the creation and destruction
// calls made by its provider.
type FrontEnd[B any] struct {
	backend B
	bound   bool
}

// Bind attaches a backend to the front end. It returns ErrAlreadyBound
// if a backend is already attached.
func (f *FrontEnd[B]) Bind(backend B) error {
	if f.bound {
		return ErrAlreadyBound
	}
	f.backend = backend
	f.bound = true
	return nil
}

// Bound reports whether a backend is currently attached.
func (f *FrontEnd[B]) Bound() bool {
	return f.bound
}

// Backend returns the attached backend, if any.
func (f *FrontEnd[B]) Backend() (B, bool) {
	return f.backend, f.bound
}

// sync forwards a committed field change to the bound backend.
//
// When unbound it is a no-op and the mutation is complete. When bound it
// invokes call with the backend and propagates its error unchanged. The
// model value has already been committed by the caller and is never
// rolled back: consistency is at-most-once-forward.
func (f *FrontEnd[B]) sync(entity, field string, value any, call func(B) error) error {
	if !f.bound {
		return nil
	}
	Logger().Debug("viz: sync", "entity", entity, "field", field, "value", value)
	return call(f.backend)
}
