package viz

// SceneBackend is the capability protocol for a scene root. A scene is
// synchronized exactly like a node.
type SceneBackend = NodeBackend

// Scene is the root container of a node tree. It behaves as a node in
// every respect (it is the tree's root), but providers may realize it
// with a dedicated adapter, e.g. a drawing-engine subscene.
type Scene struct {
	Node
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{Node: Node{
		id:      newID(),
		name:    "scene",
		visible: true,
		opacity: 1,
	}}
}

// Root returns the scene's root node (itself).
func (s *Scene) Root() *Node {
	return &s.Node
}

// Attach creates a scene adapter from p, binds it, and attaches the
// whole node tree below the root.
func (s *Scene) Attach(p Provider) error {
	if s.Bound() {
		return ErrAlreadyBound
	}
	b, err := p.NewSceneBackend(s)
	if err != nil {
		return err
	}
	return s.attachWith(p, b)
}
