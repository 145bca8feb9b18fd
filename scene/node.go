package scene

import (
	"slices"

	"github.com/google/uuid"
)

// Node is an element of the scene graph. A node owns its children; the graph
// is a tree, so a node has at most one parent.
type Node struct {
	ID      string
	Name    string
	Local   Transform
	Visible bool

	// Shape is the pick geometry in the node's local space. Nil means the
	// node is never hit by IntersectNodes.
	Shape Shape

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		ID:      uuid.NewString(),
		Name:    name,
		Local:   Identity(),
		Visible: true,
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// Add reparents each child under n, keeping its local transform.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) Remove(child *Node) {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
}

// WorldTransform composes the local transforms from the root down to n.
func (n *Node) WorldTransform() Transform {
	if n.parent == nil {
		return n.Local
	}
	return Compose(n.parent.WorldTransform(), n.Local)
}

// SetWorldTransform stores w as the node's world transform by converting it
// into the parent's space.
func (n *Node) SetWorldTransform(w Transform) {
	if n.parent == nil {
		n.Local = w
		return
	}
	n.Local = Relative(n.parent.WorldTransform(), w)
}

// VisibleInTree reports whether n and all its ancestors are visible.
func (n *Node) VisibleInTree() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.Visible {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants depth first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
