package scene

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

type Hit struct {
	Node  *Node
	T     float32    // world-space ray parameter
	Point mgl32.Vec3 // world-space hit point
}

// IntersectNodes tests ray against the pick shapes of nodes and returns every
// hit ordered by distance. Hidden nodes and nodes without a shape are skipped.
func IntersectNodes(ray Ray, nodes []*Node) []Hit {
	var hits []Hit
	for _, n := range nodes {
		if n == nil || n.Shape == nil || !n.VisibleInTree() {
			continue
		}
		if hit, ok := intersectNode(ray, n); ok {
			hits = append(hits, hit)
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.T, b.T)
	})
	return hits
}

// Nearest returns the closest hit of IntersectNodes.
func Nearest(ray Ray, nodes []*Node) (Hit, bool) {
	hits := IntersectNodes(ray, nodes)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func intersectNode(ray Ray, n *Node) (Hit, bool) {
	world := n.WorldTransform()

	// Transform ray to object space
	local, scale := ray.Transformed(world.WorldToObject())
	if scale == 0 {
		return Hit{}, false
	}
	t, ok := n.Shape.Intersect(local)
	if !ok {
		return Hit{}, false
	}

	worldPos := world.ObjectToWorld().Mul4x1(local.At(t).Vec4(1.0)).Vec3()
	return Hit{
		Node:  n,
		T:     worldPos.Sub(ray.Origin).Len(),
		Point: worldPos,
	}, true
}
