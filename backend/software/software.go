// Package software provides the headless CPU provider for viz.
//
// It is the always-available fallback: every protocol adapter mirrors
// the front-end state in memory, and showing a canvas rasterizes it into
// an in-process image that can be inspected with [Provider.Image]. No
// window is opened and no GPU is touched.
//
// Importing the package registers it under the name "software":
//
//	import _ "github.com/gogpu/viz/backend/software"
package software

import (
	"errors"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"

	"github.com/gogpu/viz"
)

// Name is the registry name of this provider.
const Name = "software"

// ErrNotInitialized is returned when adapters are requested before Init.
var ErrNotInitialized = errors.New("software: provider not initialized")

// gridLine is the separator color drawn between view cells.
var gridLine = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

func init() {
	viz.RegisterProvider(Name, func() viz.Provider { return New() })
}

// Provider is the software backend provider.
type Provider struct {
	initialized bool
	canvases    []*canvasAdapter
}

// New creates an uninitialized software provider.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return Name }

// Init initializes the provider.
func (p *Provider) Init() error {
	p.initialized = true
	viz.Logger().Info("software: initialized")
	return nil
}

// Close releases all adapter resources.
func (p *Provider) Close() {
	for _, c := range p.canvases {
		c.release()
	}
	p.canvases = nil
	p.initialized = false
	viz.Logger().Info("software: closed")
}

// NewNodeBackend creates the in-memory node adapter.
func (p *Provider) NewNodeBackend(n *viz.Node) (viz.NodeBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &nodeAdapter{node: n}, nil
}

// NewSceneBackend creates the in-memory scene adapter.
func (p *Provider) NewSceneBackend(s *viz.Scene) (viz.SceneBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &nodeAdapter{node: s.Root()}, nil
}

// NewCameraBackend creates the in-memory camera adapter.
func (p *Provider) NewCameraBackend(c *viz.Camera) (viz.CameraBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &cameraAdapter{camera: c}, nil
}

// NewViewBackend creates the in-memory view adapter.
func (p *Provider) NewViewBackend(v *viz.View) (viz.ViewBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &viewAdapter{view: v}, nil
}

// NewCanvasBackend creates the rasterizing canvas adapter.
func (p *Provider) NewCanvasBackend(c *viz.Canvas) (viz.CanvasBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	a := &canvasAdapter{canvas: c}
	p.canvases = append(p.canvases, a)
	return a, nil
}

// Image returns the most recently rendered canvas image, or nil when no
// canvas has been shown yet.
func (p *Provider) Image() *image.RGBA {
	for i := len(p.canvases) - 1; i >= 0; i-- {
		if img := p.canvases[i].img; img != nil {
			return img
		}
	}
	return nil
}

// nodeAdapter mirrors a Node's synchronized fields.
type nodeAdapter struct {
	node        *viz.Node
	name        string
	parent      *viz.Node
	children    []*viz.Node
	visible     bool
	opacity     float64
	order       int
	interactive bool
	transform   *viz.Transform
}

func (a *nodeAdapter) SetName(name string) error { a.name = name; return nil }

func (a *nodeAdapter) SetParent(parent *viz.Node) error { a.parent = parent; return nil }

func (a *nodeAdapter) SetChildren(children []*viz.Node) error { a.children = children; return nil }

func (a *nodeAdapter) SetVisible(visible bool) error { a.visible = visible; return nil }

func (a *nodeAdapter) SetOpacity(opacity float64) error { a.opacity = opacity; return nil }

func (a *nodeAdapter) SetOrder(order int) error { a.order = order; return nil }

func (a *nodeAdapter) SetInteractive(interactive bool) error { a.interactive = interactive; return nil }

func (a *nodeAdapter) SetTransform(transform *viz.Transform) error { a.transform = transform; return nil }

// cameraAdapter mirrors a Camera's synchronized fields.
type cameraAdapter struct {
	camera      *viz.Camera
	typ         viz.CameraType
	interactive bool
	zoom        float64
	center      mgl64.Vec3
	rng         [2]mgl64.Vec3
	hasRange    bool
}

func (a *cameraAdapter) SetType(typ viz.CameraType) error { a.typ = typ; return nil }

func (a *cameraAdapter) SetInteractive(interactive bool) error { a.interactive = interactive; return nil }

func (a *cameraAdapter) SetZoom(zoom float64) error { a.zoom = zoom; return nil }

func (a *cameraAdapter) SetCenter(center mgl64.Vec3) error { a.center = center; return nil }

func (a *cameraAdapter) SetRange(min, max mgl64.Vec3) error {
	a.rng = [2]mgl64.Vec3{min, max}
	a.hasRange = true
	return nil
}

// viewAdapter mirrors a View's camera/scene pairing.
type viewAdapter struct {
	view   *viz.View
	camera *viz.Camera
	scene  *viz.Scene
}

func (a *viewAdapter) SetCamera(camera *viz.Camera) error { a.camera = camera; return nil }

func (a *viewAdapter) SetScene(scene *viz.Scene) error { a.scene = scene; return nil }

// canvasAdapter rasterizes the canvas into an in-process image.
type canvasAdapter struct {
	canvas        *viz.Canvas
	title         string
	width, height int
	background    color.RGBA
	img           *image.RGBA
}

func (a *canvasAdapter) SetTitle(title string) error { a.title = title; return nil }

func (a *canvasAdapter) SetSize(width, height int) error {
	a.width, a.height = width, height
	// Size changes invalidate the rendered image.
	a.img = nil
	return nil
}

func (a *canvasAdapter) SetBackground(background color.RGBA) error {
	a.background = background
	return nil
}

// Show renders the canvas: background fill plus separator lines between
// occupied view cells.
func (a *canvasAdapter) Show() error {
	img := image.NewRGBA(image.Rect(0, 0, a.width, a.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(a.background), image.Point{}, draw.Src)

	rows, cols := gridShape(a.canvas)
	for r := 1; r < rows; r++ {
		y := r * a.height / rows
		line := image.Rect(0, y, a.width, y+1)
		draw.Draw(img, line, image.NewUniform(gridLine), image.Point{}, draw.Src)
	}
	for c := 1; c < cols; c++ {
		x := c * a.width / cols
		line := image.Rect(x, 0, x+1, a.height)
		draw.Draw(img, line, image.NewUniform(gridLine), image.Point{}, draw.Src)
	}

	a.img = img
	viz.Logger().Info("software: canvas shown", "title", a.title, "size", [2]int{a.width, a.height})
	return nil
}

func (a *canvasAdapter) Close() error {
	a.release()
	return nil
}

func (a *canvasAdapter) release() {
	a.img = nil
}

// gridShape returns the number of grid rows and columns spanned by the
// canvas's occupied cells.
func gridShape(c *viz.Canvas) (rows, cols int) {
	for idx := range c.Views() {
		if idx.Row+1 > rows {
			rows = idx.Row + 1
		}
		if idx.Col+1 > cols {
			cols = idx.Col + 1
		}
	}
	return rows, cols
}
