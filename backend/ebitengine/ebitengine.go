// Package ebitengine provides a windowed viz provider on Ebitengine.
//
// Showing a canvas opens a window and runs the Ebitengine game loop
// until the canvas is closed. The loop lives entirely inside this
// adapter — the viz core stays synchronous and loop-free; Show simply
// blocks until the window goes away.
//
// The adapter draws the canvas background and the separators of the view
// grid. Realizing node visuals is left to a real drawing engine built on
// top of the node protocol.
//
// Importing the package registers it under the name "ebitengine":
//
//	import _ "github.com/gogpu/viz/backend/ebitengine"
package ebitengine

import (
	"errors"
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/viz"
)

// Name is the registry name of this provider.
const Name = "ebitengine"

// ErrNotInitialized is returned when adapters are requested before Init.
var ErrNotInitialized = errors.New("ebitengine: provider not initialized")

// gridLine is the separator color drawn between view cells.
var gridLine = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

func init() {
	viz.RegisterProvider(Name, func() viz.Provider { return New() })
}

// Provider is the Ebitengine backend provider.
type Provider struct {
	initialized bool
}

// New creates an uninitialized Ebitengine provider.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return Name }

// Init initializes the provider.
func (p *Provider) Init() error {
	p.initialized = true
	viz.Logger().Info("ebitengine: initialized")
	return nil
}

// Close releases provider resources.
func (p *Provider) Close() {
	p.initialized = false
	viz.Logger().Info("ebitengine: closed")
}

// NewNodeBackend creates the node adapter.
func (p *Provider) NewNodeBackend(n *viz.Node) (viz.NodeBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &nodeAdapter{}, nil
}

// NewSceneBackend creates the scene adapter.
func (p *Provider) NewSceneBackend(s *viz.Scene) (viz.SceneBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &nodeAdapter{}, nil
}

// NewCameraBackend creates the camera adapter.
func (p *Provider) NewCameraBackend(c *viz.Camera) (viz.CameraBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &cameraAdapter{}, nil
}

// NewViewBackend creates the view adapter.
func (p *Provider) NewViewBackend(v *viz.View) (viz.ViewBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &viewAdapter{}, nil
}

// NewCanvasBackend creates the windowed canvas adapter.
func (p *Provider) NewCanvasBackend(c *viz.Canvas) (viz.CanvasBackend, error) {
	if !p.initialized {
		return nil, ErrNotInitialized
	}
	return &canvasAdapter{canvas: c}, nil
}

// nodeAdapter accepts node state. Visual realization of nodes is out of
// scope for this adapter; state is kept for future drawing layers.
type nodeAdapter struct {
	mu          sync.Mutex
	name        string
	visible     bool
	opacity     float64
	order       int
	interactive bool
	transform   *viz.Transform
}

func (a *nodeAdapter) SetName(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
	return nil
}

func (a *nodeAdapter) SetParent(*viz.Node) error { return nil }

func (a *nodeAdapter) SetChildren([]*viz.Node) error { return nil }

func (a *nodeAdapter) SetVisible(visible bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.visible = visible
	return nil
}

func (a *nodeAdapter) SetOpacity(opacity float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opacity = opacity
	return nil
}

func (a *nodeAdapter) SetOrder(order int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order = order
	return nil
}

func (a *nodeAdapter) SetInteractive(interactive bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.interactive = interactive
	return nil
}

func (a *nodeAdapter) SetTransform(transform *viz.Transform) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transform = transform
	return nil
}

type cameraAdapter struct {
	mu          sync.Mutex
	typ         viz.CameraType
	interactive bool
	zoom        float64
	center      mgl64.Vec3
}

func (a *cameraAdapter) SetType(typ viz.CameraType) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.typ = typ
	return nil
}

func (a *cameraAdapter) SetInteractive(interactive bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.interactive = interactive
	return nil
}

func (a *cameraAdapter) SetZoom(zoom float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.zoom = zoom
	return nil
}

func (a *cameraAdapter) SetCenter(center mgl64.Vec3) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.center = center
	return nil
}

func (a *cameraAdapter) SetRange(min, max mgl64.Vec3) error { return nil }

type viewAdapter struct{}

func (a *viewAdapter) SetCamera(*viz.Camera) error { return nil }

func (a *viewAdapter) SetScene(*viz.Scene) error { return nil }

// canvasAdapter is the window. It implements both viz.CanvasBackend and
// ebiten.Game: Show hands it to RunGame and blocks until Close (or the
// window's close button) terminates the loop.
//
// The game loop runs concurrently with application mutations, so the
// state it draws from is mutex-guarded.
type canvasAdapter struct {
	canvas *viz.Canvas

	mu            sync.Mutex
	title         string
	width, height int
	background    color.RGBA
	closed        bool
}

func (a *canvasAdapter) SetTitle(title string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.title = title
	ebiten.SetWindowTitle(title)
	return nil
}

func (a *canvasAdapter) SetSize(width, height int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width, a.height = width, height
	ebiten.SetWindowSize(width, height)
	return nil
}

func (a *canvasAdapter) SetBackground(background color.RGBA) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.background = background
	return nil
}

// Show opens the window and runs the game loop. It blocks until the
// canvas is closed.
func (a *canvasAdapter) Show() error {
	a.mu.Lock()
	a.closed = false
	title := a.title
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(a.width, a.height)
	a.mu.Unlock()

	viz.Logger().Info("ebitengine: canvas shown", "title", title)
	if err := ebiten.RunGame(a); err != nil {
		return err
	}
	return nil
}

func (a *canvasAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

// Update implements ebiten.Game.
func (a *canvasAdapter) Update() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game: background fill plus separator lines
// between occupied view cells.
func (a *canvasAdapter) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	bg := a.background
	w, h := a.width, a.height
	a.mu.Unlock()

	screen.Fill(bg)

	rows, cols := gridShape(a.canvas)
	for r := 1; r < rows; r++ {
		y := float32(r * h / rows)
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, gridLine, false)
	}
	for c := 1; c < cols; c++ {
		x := float32(c * w / cols)
		vector.StrokeLine(screen, x, 0, x, float32(h), 1, gridLine, false)
	}
}

// Layout implements ebiten.Game.
func (a *canvasAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
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
