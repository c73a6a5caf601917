package viz

import (
	"errors"
	"testing"
)

// countingBackend is a minimal protocol implementation counting calls.
type countingBackend struct {
	calls map[string]int
	last  map[string]any
	fail  error
}

func newCountingBackend() *countingBackend {
	return &countingBackend{calls: make(map[string]int), last: make(map[string]any)}
}

func (b *countingBackend) record(op string, v any) error {
	b.calls[op]++
	b.last[op] = v
	return b.fail
}

func (b *countingBackend) SetName(v string) error            { return b.record("SetName", v) }
func (b *countingBackend) SetParent(v *Node) error           { return b.record("SetParent", v) }
func (b *countingBackend) SetChildren(v []*Node) error       { return b.record("SetChildren", v) }
func (b *countingBackend) SetVisible(v bool) error           { return b.record("SetVisible", v) }
func (b *countingBackend) SetOpacity(v float64) error        { return b.record("SetOpacity", v) }
func (b *countingBackend) SetOrder(v int) error              { return b.record("SetOrder", v) }
func (b *countingBackend) SetInteractive(v bool) error       { return b.record("SetInteractive", v) }
func (b *countingBackend) SetTransform(v *Transform) error   { return b.record("SetTransform", v) }

func TestBindOnce(t *testing.T) {
	var f FrontEnd[NodeBackend]
	if f.Bound() {
		t.Fatal("fresh front end should be unbound")
	}
	if _, ok := f.Backend(); ok {
		t.Fatal("Backend() on unbound front end should report false")
	}

	b := newCountingBackend()
	if err := f.Bind(b); err != nil {
		t.Fatalf("Bind() = %v", err)
	}
	if !f.Bound() {
		t.Error("front end should be bound after Bind")
	}
	if got, ok := f.Backend(); !ok || got != NodeBackend(b) {
		t.Error("Backend() should return the bound backend")
	}

	if err := f.Bind(newCountingBackend()); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("second Bind() = %v, want ErrAlreadyBound", err)
	}
}

func TestSyncHeadless(t *testing.T) {
	var f FrontEnd[NodeBackend]
	called := false
	err := f.sync("node", "visible", true, func(NodeBackend) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("sync() headless = %v", err)
	}
	if called {
		t.Error("sync() must not dispatch when unbound")
	}
}

func TestSyncDispatches(t *testing.T) {
	var f FrontEnd[NodeBackend]
	b := newCountingBackend()
	if err := f.Bind(b); err != nil {
		t.Fatalf("Bind() = %v", err)
	}

	err := f.sync("node", "visible", true, func(nb NodeBackend) error {
		return nb.SetVisible(true)
	})
	if err != nil {
		t.Fatalf("sync() = %v", err)
	}
	if b.calls["SetVisible"] != 1 {
		t.Errorf("SetVisible called %d times, want 1", b.calls["SetVisible"])
	}

	// Backend errors propagate unchanged.
	wantErr := errors.New("engine rejected value")
	b.fail = wantErr
	err = f.sync("node", "visible", false, func(nb NodeBackend) error {
		return nb.SetVisible(false)
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("sync() with failing backend = %v, want %v", err, wantErr)
	}
}
