// Package recorder provides a viz provider that records every backend
// protocol call instead of drawing.
//
// It exists for tests and debugging: bind a model tree to a recorder and
// assert on the exact sequence of synchronization calls the binding
// layer produced. Individual operations can be made to fail with
// [Provider.FailWith] to exercise error propagation.
//
// Importing the package registers it under the name "recorder":
//
//	import _ "github.com/gogpu/viz/backend/recorder"
package recorder

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/viz"
)

// Name is the registry name of this provider.
const Name = "recorder"

func init() {
	viz.RegisterProvider(Name, func() viz.Provider { return New() })
}

// Call records one backend protocol invocation.
type Call struct {
	// Entity is the adapter kind: "node", "scene", "camera", "view" or
	// "canvas".
	Entity string
	// Op is the protocol operation, e.g. "SetVisible".
	Op string
	// Value is the argument the operation received. Operations with two
	// arguments record them as a slice.
	Value any
}

// Provider records every protocol call made by its adapters.
type Provider struct {
	calls []Call
	fail  map[string]error
}

// New creates an empty recorder provider.
func New() *Provider {
	return &Provider{fail: make(map[string]error)}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return Name }

// Init initializes the provider.
func (p *Provider) Init() error { return nil }

// Close discards the recording.
func (p *Provider) Close() { p.calls = nil }

// Calls returns a copy of all recorded calls in invocation order.
func (p *Provider) Calls() []Call {
	return slices.Clone(p.calls)
}

// CallsTo returns the recorded calls for one operation name.
func (p *Provider) CallsTo(op string) []Call {
	var out []Call
	for _, c := range p.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded calls but keeps the failure plan.
func (p *Provider) Reset() { p.calls = nil }

// FailWith makes every subsequent invocation of op return err. The call
// is still recorded first: the front end has already committed its value
// when the backend fails, and the recording shows that.
func (p *Provider) FailWith(op string, err error) {
	p.fail[op] = err
}

// record appends a call and returns the planned failure for it, if any.
func (p *Provider) record(entity, op string, value any) error {
	p.calls = append(p.calls, Call{Entity: entity, Op: op, Value: value})
	return p.fail[op]
}

// NewNodeBackend creates a recording node adapter.
func (p *Provider) NewNodeBackend(n *viz.Node) (viz.NodeBackend, error) {
	return &nodeAdapter{p: p, entity: "node"}, nil
}

// NewSceneBackend creates a recording scene adapter.
func (p *Provider) NewSceneBackend(s *viz.Scene) (viz.SceneBackend, error) {
	return &nodeAdapter{p: p, entity: "scene"}, nil
}

// NewCameraBackend creates a recording camera adapter.
func (p *Provider) NewCameraBackend(c *viz.Camera) (viz.CameraBackend, error) {
	return &cameraAdapter{p: p}, nil
}

// NewViewBackend creates a recording view adapter.
func (p *Provider) NewViewBackend(v *viz.View) (viz.ViewBackend, error) {
	return &viewAdapter{p: p}, nil
}

// NewCanvasBackend creates a recording canvas adapter.
func (p *Provider) NewCanvasBackend(c *viz.Canvas) (viz.CanvasBackend, error) {
	return &canvasAdapter{p: p}, nil
}

type nodeAdapter struct {
	p      *Provider
	entity string
}

func (a *nodeAdapter) SetName(name string) error {
	return a.p.record(a.entity, "SetName", name)
}

func (a *nodeAdapter) SetParent(parent *viz.Node) error {
	return a.p.record(a.entity, "SetParent", parent)
}

func (a *nodeAdapter) SetChildren(children []*viz.Node) error {
	return a.p.record(a.entity, "SetChildren", children)
}

func (a *nodeAdapter) SetVisible(visible bool) error {
	return a.p.record(a.entity, "SetVisible", visible)
}

func (a *nodeAdapter) SetOpacity(opacity float64) error {
	return a.p.record(a.entity, "SetOpacity", opacity)
}

func (a *nodeAdapter) SetOrder(order int) error {
	return a.p.record(a.entity, "SetOrder", order)
}

func (a *nodeAdapter) SetInteractive(interactive bool) error {
	return a.p.record(a.entity, "SetInteractive", interactive)
}

func (a *nodeAdapter) SetTransform(transform *viz.Transform) error {
	return a.p.record(a.entity, "SetTransform", transform)
}

type cameraAdapter struct {
	p *Provider
}

func (a *cameraAdapter) SetType(typ viz.CameraType) error {
	return a.p.record("camera", "SetType", typ)
}

func (a *cameraAdapter) SetInteractive(interactive bool) error {
	return a.p.record("camera", "SetInteractive", interactive)
}

func (a *cameraAdapter) SetZoom(zoom float64) error {
	return a.p.record("camera", "SetZoom", zoom)
}

func (a *cameraAdapter) SetCenter(center mgl64.Vec3) error {
	return a.p.record("camera", "SetCenter", center)
}

func (a *cameraAdapter) SetRange(min, max mgl64.Vec3) error {
	return a.p.record("camera", "SetRange", [2]mgl64.Vec3{min, max})
}

type viewAdapter struct {
	p *Provider
}

func (a *viewAdapter) SetCamera(camera *viz.Camera) error {
	return a.p.record("view", "SetCamera", camera)
}

func (a *viewAdapter) SetScene(scene *viz.Scene) error {
	return a.p.record("view", "SetScene", scene)
}

type canvasAdapter struct {
	p *Provider
}

func (a *canvasAdapter) SetTitle(title string) error {
	return a.p.record("canvas", "SetTitle", title)
}

func (a *canvasAdapter) SetSize(width, height int) error {
	return a.p.record("canvas", "SetSize", [2]int{width, height})
}

func (a *canvasAdapter) SetBackground(background color.RGBA) error {
	return a.p.record("canvas", "SetBackground", background)
}

func (a *canvasAdapter) Show() error {
	return a.p.record("canvas", "Show", nil)
}

func (a *canvasAdapter) Close() error {
	return a.p.record("canvas", "Close", nil)
}
