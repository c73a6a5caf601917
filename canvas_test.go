package viz

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas()
	w, h := c.Size()
	if w != 600 || h != 600 {
		t.Errorf("Size() = %dx%d, want 600x600", w, h)
	}
	if c.Background() != (color.RGBA{A: 0xff}) {
		t.Errorf("Background() = %v, want opaque black", c.Background())
	}
	if len(c.Views()) != 0 {
		t.Error("new canvas should have no views")
	}
}

func TestCanvasSetSizeValidation(t *testing.T) {
	c := NewCanvas()
	err := c.SetSize(0, 100)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("SetSize(0, 100) = %v, want *ValidationError", err)
	}
	if w, h := c.Size(); w != 600 || h != 600 {
		t.Errorf("failed SetSize changed size to %dx%d", w, h)
	}
}

func TestCanvasBackgroundName(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		want    color.RGBA
		wantErr bool
	}{
		{"white", "white", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"black", "black", color.RGBA{0, 0, 0, 0xff}, false},
		{"slategray", "slategray", color.RGBA{0x70, 0x80, 0x90, 0xff}, false},
		{"unknown", "not-a-color", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas()
			err := c.SetBackgroundName(tt.color)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetBackgroundName(%q) = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if !tt.wantErr && c.Background() != tt.want {
				t.Errorf("Background() = %v, want %v", c.Background(), tt.want)
			}
		})
	}
}

func TestCanvasViewGrid(t *testing.T) {
	c := NewCanvas()
	v00, err := c.View(0, 0)
	if err != nil {
		t.Fatalf("View(0,0) = %v", err)
	}
	again, err := c.View(0, 0)
	if err != nil {
		t.Fatalf("View(0,0) = %v", err)
	}
	if v00 != again {
		t.Error("View(0,0) should return the same view on repeat access")
	}

	if _, err := c.View(1, 1); err != nil {
		t.Fatalf("View(1,1) = %v", err)
	}
	if len(c.Views()) != 2 {
		t.Errorf("Views() has %d entries, want 2", len(c.Views()))
	}

	if _, err := c.View(-1, 0); err == nil {
		t.Error("View(-1, 0) should fail")
	}

	if err := c.RemoveView(1, 1); err != nil {
		t.Fatalf("RemoveView() = %v", err)
	}
	if len(c.Views()) != 1 {
		t.Errorf("Views() has %d entries after removal, want 1", len(c.Views()))
	}
}

func TestCanvasHeadlessShow(t *testing.T) {
	c := NewCanvas()
	if err := c.Show(); err != nil {
		t.Errorf("headless Show() = %v", err)
	}
}

func TestCanvasAttach(t *testing.T) {
	c := NewCanvas()
	if _, err := c.View(0, 0); err != nil {
		t.Fatal(err)
	}
	p := newStubProvider()
	if err := c.Attach(p); err != nil {
		t.Fatalf("Attach() = %v", err)
	}

	v, err := c.View(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Bound() {
		t.Error("attaching a canvas should attach its views")
	}

	// Views created after attachment bind immediately.
	late, err := c.View(0, 1)
	if err != nil {
		t.Fatalf("View(0,1) = %v", err)
	}
	if !late.Bound() {
		t.Error("view created on an attached canvas should be bound")
	}

	cb, _ := c.Backend()
	stub := cb.(*stubCanvasBackend)
	if err := c.Show(); err != nil {
		t.Fatalf("Show() = %v", err)
	}
	if !stub.shown {
		t.Error("Show() was not forwarded to the backend")
	}
}

func TestCanvasCloseFreezes(t *testing.T) {
	c := NewCanvas()
	p := newStubProvider()
	if err := c.Attach(p); err != nil {
		t.Fatalf("Attach() = %v", err)
	}
	cb, _ := c.Backend()
	stub := cb.(*stubCanvasBackend)

	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if !stub.closed {
		t.Error("Close() was not forwarded to the backend")
	}
	if err := c.SetTitle("late"); !errors.Is(err, ErrFrozen) {
		t.Errorf("SetTitle() after Close = %v, want ErrFrozen", err)
	}

	// The released backend must not see further lifecycle calls.
	stub.shown = false
	if err := c.Show(); !errors.Is(err, ErrFrozen) {
		t.Errorf("Show() after Close = %v, want ErrFrozen", err)
	}
	if stub.shown {
		t.Error("Show() after Close reached the backend")
	}
	stub.closed = false
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if stub.closed {
		t.Error("second Close() reached the backend")
	}
}
