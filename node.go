package viz

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// NodeBackend is the capability protocol a provider's node adapter must
// satisfy: one setter per synchronizable Node field. Conformance is
// structural — any type with these methods qualifies.
type NodeBackend interface {
	SetName(name string) error
	SetParent(parent *Node) error
	SetChildren(children []*Node) error
	SetVisible(visible bool) error
	SetOpacity(opacity float64) error
	SetOrder(order int) error
	SetInteractive(interactive bool) error
	SetTransform(transform *Transform) error
}

// Node is a positioned, orderable element in the scene tree.
//
// A node owns its children list and holds a weak back-reference to its
// parent. Both sides of the parent/child association are maintained
// together by AddChild, RemoveChild and Reparent; the children slice is
// never exposed for direct mutation.
//
// A nil transform contributes the identity to the world transform chain.
type Node struct {
	Model
	FrontEnd[NodeBackend]

	id          uuid.UUID
	name        string
	parent      *Node
	children    []*Node
	visible     bool
	opacity     float64
	order       int
	interactive bool
	transform   *Transform

	// provider is set while the node is attached; it creates backends
	// for children added later (deferred backend creation).
	provider Provider
}

// newID mints a stable node identity.
func newID() uuid.UUID { return uuid.New() }

// NewNode creates a visible, fully opaque node. The name may be empty.
func NewNode(name string) *Node {
	return &Node{
		id:      newID(),
		name:    name,
		visible: true,
		opacity: 1,
	}
}

// ID returns the node's stable identity.
func (n *Node) ID() uuid.UUID { return n.id }

// Name returns the node's name, possibly empty.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the node's children, in insertion order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Visible reports whether the node itself is marked visible.
func (n *Node) Visible() bool { return n.visible }

// Opacity returns the node's local opacity in [0, 1].
func (n *Node) Opacity() float64 { return n.opacity }

// Order returns the node's draw-order value.
func (n *Node) Order() int { return n.order }

// Interactive reports whether the node accepts pointer events.
func (n *Node) Interactive() bool { return n.interactive }

// Transform returns the node's local-to-parent transform, or nil when
// the node has none (identity).
func (n *Node) Transform() *Transform { return n.transform }

// SetName sets the node's name.
func (n *Node) SetName(name string) error {
	if err := n.mutable(); err != nil {
		return err
	}
	n.name = name
	return n.sync("node", "name", name, func(b NodeBackend) error { return b.SetName(name) })
}

// SetVisible sets the node's visibility flag.
func (n *Node) SetVisible(visible bool) error {
	if err := n.mutable(); err != nil {
		return err
	}
	n.visible = visible
	return n.sync("node", "visible", visible, func(b NodeBackend) error { return b.SetVisible(visible) })
}

// SetOpacity sets the node's local opacity. Values outside [0, 1] fail
// with a ValidationError and leave the field unchanged.
func (n *Node) SetOpacity(opacity float64) error {
	if err := n.mutable(); err != nil {
		return err
	}
	if err := unitRange("opacity", opacity); err != nil {
		return err
	}
	n.opacity = opacity
	return n.sync("node", "opacity", opacity, func(b NodeBackend) error { return b.SetOpacity(opacity) })
}

// SetOrder sets the draw-order value used to break ties among siblings.
// Greater values are drawn later; children are always drawn after their
// parent regardless of order.
func (n *Node) SetOrder(order int) error {
	if err := n.mutable(); err != nil {
		return err
	}
	n.order = order
	return n.sync("node", "order", order, func(b NodeBackend) error { return b.SetOrder(order) })
}

// SetInteractive sets whether the node accepts pointer events.
func (n *Node) SetInteractive(interactive bool) error {
	if err := n.mutable(); err != nil {
		return err
	}
	n.interactive = interactive
	return n.sync("node", "interactive", interactive, func(b NodeBackend) error { return b.SetInteractive(interactive) })
}

// SetTransform sets the node's local-to-parent transform. A nil transform
// means identity.
func (n *Node) SetTransform(transform *Transform) error {
	if err := n.mutable(); err != nil {
		return err
	}
	n.transform = transform
	return n.sync("node", "transform", transform, func(b NodeBackend) error { return b.SetTransform(transform) })
}

// AddChild appends child to the node's children and sets the child's
// parent back-reference; both sides of the association change in this
// one operation. The child must be parentless — move nodes between
// parents with Reparent. Links that would close a cycle are rejected.
//
// If the node is attached to a provider, an unbound child (and its
// subtree) is attached to the same provider before the change is
// forwarded.
func (n *Node) AddChild(child *Node) error {
	if err := n.mutable(); err != nil {
		return err
	}
	if child == nil {
		return notNil("child", nil)
	}
	if child.parent != nil {
		return &ValidationError{Field: "child", Value: child.name, Reason: "already has a parent; use Reparent"}
	}
	for a := n; a != nil; a = a.parent {
		if a == child {
			return &ValidationError{Field: "child", Value: child.name, Reason: "link would create a cycle"}
		}
	}

	child.parent = n
	n.children = append(n.children, child)

	if n.provider != nil && !child.Bound() {
		if err := child.Attach(n.provider); err != nil {
			return err
		}
	}
	if err := child.sync("node", "parent", n, func(b NodeBackend) error { return b.SetParent(n) }); err != nil {
		return err
	}
	children := n.Children()
	return n.sync("node", "children", children, func(b NodeBackend) error { return b.SetChildren(children) })
}

// RemoveChild detaches child from the node, clearing the child's parent
// back-reference. The child keeps its backend binding; discard it to
// detach for good.
func (n *Node) RemoveChild(child *Node) error {
	if err := n.mutable(); err != nil {
		return err
	}
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return &ValidationError{Field: "child", Value: childName(child), Reason: "not a child of this node"}
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil

	if err := child.sync("node", "parent", nil, func(b NodeBackend) error { return b.SetParent(nil) }); err != nil {
		return err
	}
	children := n.Children()
	return n.sync("node", "children", children, func(b NodeBackend) error { return b.SetChildren(children) })
}

// Reparent moves the node from its current parent (if any) to newParent,
// updating both sides of both links as one operation. The add side is
// validated before the node is detached so a rejected move leaves the
// tree unchanged.
func (n *Node) Reparent(newParent *Node) error {
	if newParent == nil {
		return notNil("parent", nil)
	}
	if err := newParent.mutable(); err != nil {
		return err
	}
	for a := newParent; a != nil; a = a.parent {
		if a == n {
			return &ValidationError{Field: "parent", Value: newParent.name, Reason: "link would create a cycle"}
		}
	}
	if n.parent != nil {
		if err := n.parent.RemoveChild(n); err != nil {
			return err
		}
	}
	return newParent.AddChild(n)
}

// Root returns the root of the tree the node belongs to.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// WorldTransform resolves the node's effective transform: the chain
// product of all ancestor transforms and its own, root-most first. A nil
// transform at any level contributes the identity.
func (n *Node) WorldTransform() Transform {
	var chain []Transform
	for a := n; a != nil; a = a.parent {
		if a.transform != nil {
			chain = append(chain, *a.transform)
		}
	}
	slices.Reverse(chain)
	return Chain(chain...)
}

// EffectiveOpacity returns the node's rendering opacity: its own opacity
// multiplied by every ancestor's, per the multiplicative inheritance
// convention. It is a derived query, not stored state.
func (n *Node) EffectiveOpacity() float64 {
	opacity := 1.0
	for a := n; a != nil; a = a.parent {
		opacity *= a.opacity
	}
	return opacity
}

// EffectiveVisible reports whether the node and all of its ancestors are
// visible.
func (n *Node) EffectiveVisible() bool {
	for a := n; a != nil; a = a.parent {
		if !a.visible {
			return false
		}
	}
	return true
}

// Walk visits the node and its descendants depth-first, parent before
// child. Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// DrawList returns the subtree in draw order: depth-first with every
// parent before its children, siblings stably sorted by ascending order
// value. Visibility is not filtered here; renderers consult
// EffectiveVisible.
func (n *Node) DrawList() []*Node {
	var out []*Node
	n.drawInto(&out)
	return out
}

func (n *Node) drawInto(out *[]*Node) {
	*out = append(*out, n)
	kids := n.Children()
	slices.SortStableFunc(kids, func(a, b *Node) int { return cmp.Compare(a.order, b.order) })
	for _, c := range kids {
		c.drawInto(out)
	}
}

// Attach creates a backend adapter for the node with p, binds it, mirrors
// the node's full current state onto it, and attaches any unbound
// children. It returns ErrAlreadyBound if the node already has a backend.
func (n *Node) Attach(p Provider) error {
	if n.Bound() {
		return ErrAlreadyBound
	}
	b, err := p.NewNodeBackend(n)
	if err != nil {
		return err
	}
	return n.attachWith(p, b)
}

// attachWith finishes attachment with an already-created adapter. Scene
// shares this path with its own adapter type.
func (n *Node) attachWith(p Provider, b NodeBackend) error {
	if err := n.Bind(b); err != nil {
		return err
	}
	n.provider = p
	if err := n.push(); err != nil {
		return err
	}
	for _, c := range n.children {
		if c.Bound() {
			continue
		}
		if err := c.Attach(p); err != nil {
			return err
		}
	}
	return nil
}

// push mirrors the node's full current state onto a freshly bound
// backend, one protocol call per field.
func (n *Node) push() error {
	b, ok := n.Backend()
	if !ok {
		return nil
	}
	if err := b.SetName(n.name); err != nil {
		return err
	}
	if err := b.SetParent(n.parent); err != nil {
		return err
	}
	if err := b.SetChildren(n.Children()); err != nil {
		return err
	}
	if err := b.SetVisible(n.visible); err != nil {
		return err
	}
	if err := b.SetOpacity(n.opacity); err != nil {
		return err
	}
	if err := b.SetOrder(n.order); err != nil {
		return err
	}
	if err := b.SetInteractive(n.interactive); err != nil {
		return err
	}
	return b.SetTransform(n.transform)
}

func childName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.name
}
