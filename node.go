package touchui

import "github.com/go-gl/mathgl/mgl32"

// --- ID counter ---

// nodeIDCounter is a plain counter (touchui is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is an element of the world-space UI hierarchy. Nodes form a tree; a
// node with a non-zero Width and Height is a hit-testable quad lying in its
// local XY plane, centered on its origin and facing +Z.
//
// Event capabilities are expressed as per-node callbacks: a node "handles"
// an event type when the matching callback is non-nil. Ancestor lookups
// (press, click, drag and scroll handler resolution) search for the nearest
// node with the callback set.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local, relative to Parent)
	Position mgl32.Vec3
	Rotation mgl32.Quat
	ScaleX   float32
	ScaleY   float32

	// Hit quad size in local units. Zero means the node is not hit-testable
	// itself but still takes part in hierarchy events.
	Width, Height float32

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Touch converts hit distance into press/release edges. Nil means the
	// node is never pressed by a hand pointer.
	Touch TouchThreshold

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerEnter            func(*PointerEventData)
	OnPointerExit             func(*PointerEventData)
	OnPointerDown             func(*PointerEventData)
	OnPointerUp               func(*PointerEventData)
	OnPointerClick            func(*PointerEventData)
	OnInitializePotentialDrag func(*PointerEventData)
	OnBeginDrag               func(*PointerEventData)
	OnDrag                    func(*PointerEventData)
	OnEndDrag                 func(*PointerEventData)
	OnDrop                    func(*PointerEventData)
	OnScroll                  func(*PointerEventData)
	OnUpdateSelected          func(*BaseEventData)
	OnSelect                  func(*BaseEventData)
	OnDeselect                func(*BaseEventData)
	OnMove                    func(*AxisEventData)
	OnSubmit                  func(*BaseEventData)
	OnCancel                  func(*BaseEventData)

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Rotation = mgl32.QuatIdent()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
}

// NewNode creates a grouping node with no hit quad.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewPanel creates a hit-testable quad of the given size.
func NewPanel(name string, width, height float32) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("touchui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("touchui: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("touchui: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find returns the first node named name in this subtree (depth-first,
// including n itself), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// --- Transform ---

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	return t.Mul4(n.Rotation.Mat4()).Mul4(mgl32.Scale3D(n.ScaleX, n.ScaleY, 1))
}

// WorldMatrix returns the node's transform in world space.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Pointers still referencing a
// disposed node treat it as absent on their next frame.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Touch = nil
	n.UserData = nil
	n.OnPointerEnter = nil
	n.OnPointerExit = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnPointerClick = nil
	n.OnInitializePotentialDrag = nil
	n.OnBeginDrag = nil
	n.OnDrag = nil
	n.OnEndDrag = nil
	n.OnDrop = nil
	n.OnScroll = nil
	n.OnUpdateSelected = nil
	n.OnSelect = nil
	n.OnDeselect = nil
	n.OnMove = nil
	n.OnSubmit = nil
	n.OnCancel = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// alive reports whether n is a usable reference: non-nil and not disposed.
func alive(n *Node) bool {
	return n != nil && !n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// findCommonRoot returns the nearest node that is an ancestor of (or equal
// to) both a and b, or nil when they share no root.
func findCommonRoot(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	for t1 := a; t1 != nil; t1 = t1.Parent {
		for t2 := b; t2 != nil; t2 = t2.Parent {
			if t1 == t2 {
				return t1
			}
		}
	}
	return nil
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
