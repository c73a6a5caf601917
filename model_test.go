package viz

import (
	"errors"
	"testing"
)

func TestFreeze(t *testing.T) {
	n := NewNode("frozen")
	if n.Frozen() {
		t.Fatal("new node should not be frozen")
	}
	n.Freeze()
	if !n.Frozen() {
		t.Fatal("Freeze() did not freeze the model")
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"SetName", func() error { return n.SetName("x") }},
		{"SetVisible", func() error { return n.SetVisible(false) }},
		{"SetOpacity", func() error { return n.SetOpacity(0.5) }},
		{"SetOrder", func() error { return n.SetOrder(3) }},
		{"SetInteractive", func() error { return n.SetInteractive(true) }},
		{"SetTransform", func() error { return n.SetTransform(nil) }},
		{"AddChild", func() error { return n.AddChild(NewNode("child")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrFrozen) {
				t.Errorf("%s on frozen model = %v, want ErrFrozen", tt.name, err)
			}
		})
	}

	// Frozen state is still readable.
	if n.Name() != "frozen" {
		t.Errorf("Name() = %q after freeze, want %q", n.Name(), "frozen")
	}
}

func TestUnitRange(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"half", 0.5, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := unitRange("opacity", tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unitRange(%v) = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("unitRange() error type = %T, want *ValidationError", err)
				}
				if vErr.Field != "opacity" {
					t.Errorf("ValidationError.Field = %q, want %q", vErr.Field, "opacity")
				}
			}
		})
	}
}

func TestPositive(t *testing.T) {
	if err := positive("zoom", 0.1); err != nil {
		t.Errorf("positive(0.1) = %v", err)
	}
	if err := positive("zoom", 0); err == nil {
		t.Error("positive(0) should fail")
	}
	if err := positive("zoom", -2); err == nil {
		t.Error("positive(-2) should fail")
	}
}

func TestPositiveSize(t *testing.T) {
	if err := positiveSize("size", 600, 400); err != nil {
		t.Errorf("positiveSize(600, 400) = %v", err)
	}
	for _, wh := range [][2]int{{0, 400}, {600, 0}, {-1, -1}} {
		if err := positiveSize("size", wh[0], wh[1]); err == nil {
			t.Errorf("positiveSize(%d, %d) should fail", wh[0], wh[1])
		}
	}
}
