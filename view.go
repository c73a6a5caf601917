package viz

// ViewBackend is the capability protocol a provider's view adapter must
// satisfy.
type ViewBackend interface {
	SetCamera(camera *Camera) error
	SetScene(scene *Scene) error
}

// View pairs exactly one Camera with one Scene: the scene is what is
// rendered, the camera decides how it is projected. Both are created
// with defaults and can be replaced wholesale.
type View struct {
	Model
	FrontEnd[ViewBackend]

	camera *Camera
	scene  *Scene

	provider Provider
}

// NewView creates a view with a default camera and an empty scene.
func NewView() *View {
	return &View{
		camera: NewCamera(),
		scene:  NewScene(),
	}
}

// Camera returns the view's camera.
func (v *View) Camera() *Camera { return v.camera }

// Scene returns the view's scene.
func (v *View) Scene() *Scene { return v.scene }

// SetCamera replaces the view's camera. If the view is attached, the new
// camera is attached to the same provider first.
func (v *View) SetCamera(camera *Camera) error {
	if err := v.mutable(); err != nil {
		return err
	}
	if camera == nil {
		return notNil("camera", nil)
	}
	if v.provider != nil && !camera.Bound() {
		if err := camera.Attach(v.provider); err != nil {
			return err
		}
	}
	v.camera = camera
	return v.sync("view", "camera", camera, func(b ViewBackend) error { return b.SetCamera(camera) })
}

// SetScene replaces the view's scene. If the view is attached, the new
// scene (and its node tree) is attached to the same provider first.
func (v *View) SetScene(scene *Scene) error {
	if err := v.mutable(); err != nil {
		return err
	}
	if scene == nil {
		return notNil("scene", nil)
	}
	if v.provider != nil && !scene.Bound() {
		if err := scene.Attach(v.provider); err != nil {
			return err
		}
	}
	v.scene = scene
	return v.sync("view", "scene", scene, func(b ViewBackend) error { return b.SetScene(scene) })
}

// Attach creates and binds adapters for the view, its camera and its
// scene tree.
func (v *View) Attach(p Provider) error {
	if v.Bound() {
		return ErrAlreadyBound
	}
	b, err := p.NewViewBackend(v)
	if err != nil {
		return err
	}
	if err := v.Bind(b); err != nil {
		return err
	}
	v.provider = p
	if !v.camera.Bound() {
		if err := v.camera.Attach(p); err != nil {
			return err
		}
	}
	if !v.scene.Bound() {
		if err := v.scene.Attach(p); err != nil {
			return err
		}
	}
	if err := b.SetCamera(v.camera); err != nil {
		return err
	}
	return b.SetScene(v.scene)
}
