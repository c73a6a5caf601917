package viz

import "github.com/go-gl/mathgl/mgl64"

// CameraType selects the interaction/projection model of a camera.
type CameraType string

// Supported camera types.
const (
	// CameraPanZoom is a 2D camera with panning and zooming.
	CameraPanZoom CameraType = "panzoom"
	// CameraArcball is a 3D orbiting camera.
	CameraArcball CameraType = "arcball"
)

// CameraBackend is the capability protocol a provider's camera adapter
// must satisfy.
type CameraBackend interface {
	SetType(typ CameraType) error
	SetInteractive(interactive bool) error
	SetZoom(zoom float64) error
	SetCenter(center mgl64.Vec3) error

	// SetRange frames the axis-aligned box [min, max] in the view.
	SetRange(min, max mgl64.Vec3) error
}

// Camera defines the projection and range applied when rendering a Scene
// through a View.
type Camera struct {
	Model
	FrontEnd[CameraBackend]

	typ         CameraType
	interactive bool
	zoom        float64
	center      mgl64.Vec3
}

// NewCamera creates an interactive pan/zoom camera at the origin.
func NewCamera() *Camera {
	return &Camera{
		typ:         CameraPanZoom,
		interactive: true,
		zoom:        1,
	}
}

// Type returns the camera type.
func (c *Camera) Type() CameraType { return c.typ }

// Interactive reports whether user input drives the camera.
func (c *Camera) Interactive() bool { return c.interactive }

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Center returns the look-at center.
func (c *Camera) Center() mgl64.Vec3 { return c.center }

// SetType sets the camera type. Unknown types fail with a
// ValidationError.
func (c *Camera) SetType(typ CameraType) error {
	if err := c.mutable(); err != nil {
		return err
	}
	switch typ {
	case CameraPanZoom, CameraArcball:
	default:
		return &ValidationError{Field: "type", Value: string(typ), Reason: "unknown camera type"}
	}
	c.typ = typ
	return c.sync("camera", "type", typ, func(b CameraBackend) error { return b.SetType(typ) })
}

// SetInteractive sets whether user input drives the camera.
func (c *Camera) SetInteractive(interactive bool) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.interactive = interactive
	return c.sync("camera", "interactive", interactive, func(b CameraBackend) error { return b.SetInteractive(interactive) })
}

// SetZoom sets the zoom factor. Non-positive zoom fails with a
// ValidationError.
func (c *Camera) SetZoom(zoom float64) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if err := positive("zoom", zoom); err != nil {
		return err
	}
	c.zoom = zoom
	return c.sync("camera", "zoom", zoom, func(b CameraBackend) error { return b.SetZoom(zoom) })
}

// SetCenter sets the look-at center.
func (c *Camera) SetCenter(center mgl64.Vec3) error {
	if err := c.mutable(); err != nil {
		return err
	}
	c.center = center
	return c.sync("camera", "center", center, func(b CameraBackend) error { return b.SetCenter(center) })
}

// SetRange asks the backend to frame the axis-aligned box [min, max].
// It is an operation, not a stored field: headless cameras accept it as
// a no-op. Each min component must not exceed its max component.
func (c *Camera) SetRange(min, max mgl64.Vec3) error {
	if err := c.mutable(); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			return &ValidationError{Field: "range", Value: [2]mgl64.Vec3{min, max}, Reason: "min exceeds max"}
		}
	}
	return c.sync("camera", "range", [2]mgl64.Vec3{min, max}, func(b CameraBackend) error { return b.SetRange(min, max) })
}

// Attach creates, binds and fills a camera adapter from p.
func (c *Camera) Attach(p Provider) error {
	if c.Bound() {
		return ErrAlreadyBound
	}
	b, err := p.NewCameraBackend(c)
	if err != nil {
		return err
	}
	if err := c.Bind(b); err != nil {
		return err
	}
	return c.push()
}

// push mirrors the camera's full current state onto a freshly bound
// backend.
func (c *Camera) push() error {
	b, ok := c.Backend()
	if !ok {
		return nil
	}
	if err := b.SetType(c.typ); err != nil {
		return err
	}
	if err := b.SetInteractive(c.interactive); err != nil {
		return err
	}
	if err := b.SetZoom(c.zoom); err != nil {
		return err
	}
	return b.SetCenter(c.center)
}
