package viz

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// CanvasBackend is the capability protocol a provider's canvas adapter
// must satisfy. Besides the field setters it carries the window
// lifecycle operations.
type CanvasBackend interface {
	SetTitle(title string) error
	SetSize(width, height int) error
	SetBackground(background color.RGBA) error

	// Show makes the canvas visible. Windowed adapters may block inside
	// their event loop until the canvas is closed.
	Show() error

	// Close hides the canvas and releases its resources.
	Close() error
}

// GridIndex addresses a view cell on a canvas, (0, 0) being the top-left
// default view.
type GridIndex struct {
	Row, Col int
}

// Canvas is the drawable surface holding a grid of views. Views are
// created on demand when a cell is first addressed, mirroring onto the
// backend if the canvas is attached.
type Canvas struct {
	Model
	FrontEnd[CanvasBackend]

	title         string
	width, height int
	background    color.RGBA
	views         map[GridIndex]*View

	provider Provider
}

// NewCanvas creates a 600x600 canvas with a black background and no
// views.
func NewCanvas() *Canvas {
	return &Canvas{
		title:      "viz",
		width:      600,
		height:     600,
		background: color.RGBA{A: 0xff},
		views:      make(map[GridIndex]*View),
	}
}

// Title returns the canvas title.
func (c *Canvas) Title() string { return c.title }

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Background returns the canvas background color.
func (c *Canvas) Background() color.RGBA { return c.background }

// Views returns the occupied grid cells and their views.
func (c *Canvas) Views() map[GridIndex]*View {
	out := make(map[GridIndex]*View, len(c.views))
	for k, v := range c.views {
		out[k] = v
	}
	return out
}

// SetTitle sets the canvas title.
func (c *Canvas) SetTitle(title string) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.title = title
	return c.sync("canvas", "title", title, func(b CanvasBackend) error { return b.SetTitle(title) })
}

// SetSize sets the canvas size in pixels. Non-positive dimensions fail
// with a ValidationError.
func (c *Canvas) SetSize(width, height int) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if err := positiveSize("size", width, height); err != nil {
		return err
	}
	c.width, c.height = width, height
	return c.sync("canvas", "size", [2]int{width, height}, func(b CanvasBackend) error { return b.SetSize(width, height) })
}

// SetBackground sets the canvas background color.
func (c *Canvas) SetBackground(background color.RGBA) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.background = background
	return c.sync("canvas", "background", background, func(b CanvasBackend) error { return b.SetBackground(background) })
}

// SetBackgroundName sets the background to a named color ("white",
// "slategray", ...). Unknown names fail with a ValidationError.
func (c *Canvas) SetBackgroundName(name string) error {
	rgba, ok := colornames.Map[name]
	if !ok {
		return &ValidationError{Field: "background", Value: name, Reason: "unknown color name"}
	}
	return c.SetBackground(rgba)
}

// View returns the view at the given cell, creating it on first access.
// A view created on an attached canvas is attached to the same provider.
// Negative indices fail with a ValidationError.
func (c *Canvas) View(row, col int) (*View, error) {
	if row < 0 || col < 0 {
		return nil, &ValidationError{Field: "view", Value: GridIndex{row, col}, Reason: "indices must be >= 0"}
	}
	idx := GridIndex{row, col}
	if v, ok := c.views[idx]; ok {
		return v, nil
	}
	if err := c.mutable(); err != nil {
		return nil, err
	}
	v := NewView()
	if c.provider != nil {
		if err := v.Attach(c.provider); err != nil {
			return nil, err
		}
	}
	c.views[idx] = v
	return v, nil
}

// RemoveView removes the view at the given cell. Removing an empty cell
// is a no-op.
func (c *Canvas) RemoveView(row, col int) error {
	if err := c.mutable(); err != nil {
		return err
	}
	delete(c.views, GridIndex{row, col})
	return nil
}

// Show forwards the show operation to the backend. Headless canvases
// accept it as a no-op; a closed canvas returns ErrFrozen.
func (c *Canvas) Show() error {
	if err := c.mutable(); err != nil {
		return err
	}
	return c.sync("canvas", "show", true, func(b CanvasBackend) error { return b.Show() })
}

// Close forwards the close operation to the backend and freezes the
// canvas. Closing an already closed canvas is a no-op.
func (c *Canvas) Close() error {
	if c.Frozen() {
		return nil
	}
	err := c.sync("canvas", "close", true, func(b CanvasBackend) error { return b.Close() })
	c.Freeze()
	return err
}

// Attach creates and binds adapters for the canvas and all its views.
func (c *Canvas) Attach(p Provider) error {
	if c.Bound() {
		return ErrAlreadyBound
	}
	b, err := p.NewCanvasBackend(c)
	if err != nil {
		return err
	}
	if err := c.Bind(b); err != nil {
		return err
	}
	c.provider = p
	if err := c.push(); err != nil {
		return err
	}
	for _, v := range c.views {
		if v.Bound() {
			continue
		}
		if err := v.Attach(p); err != nil {
			return err
		}
	}
	return nil
}

// push mirrors the canvas's full current state onto a freshly bound
// backend.
func (c *Canvas) push() error {
	b, ok := c.Backend()
	if !ok {
		return nil
	}
	if err := b.SetTitle(c.title); err != nil {
		return err
	}
	if err := b.SetSize(c.width, c.height); err != nil {
		return err
	}
	return b.SetBackground(c.background)
}
