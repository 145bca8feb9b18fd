package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/scene"
)

// Camera builds world-space rays for the picking and drag math. Both scene
// cameras implement it.
type Camera interface {
	Ray(ndc mgl32.Vec2, aspect float32) scene.Ray
	Forward() mgl32.Vec3
}

type Viewport struct {
	Width  float32
	Height float32
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// NDC converts viewport pixels (origin top-left, Y down) to normalized
// device coordinates (origin center, Y up).
func (v Viewport) NDC(x, y float32) (mgl32.Vec2, error) {
	if !v.Valid() {
		return mgl32.Vec2{}, ErrInvalidViewport
	}
	return mgl32.Vec2{
		x/v.Width*2 - 1,
		1 - y/v.Height*2,
	}, nil
}

// PointerEvent is a pointer position in viewport pixels together with the
// camera and viewport current at the time of the event.
type PointerEvent struct {
	X, Y     float32
	Camera   Camera
	Viewport Viewport
}

func (e PointerEvent) Ray() (scene.Ray, error) {
	ndc, err := e.Viewport.NDC(e.X, e.Y)
	if err != nil {
		return scene.Ray{}, err
	}
	if e.Camera == nil {
		return scene.Ray{}, ErrNoCamera
	}
	return e.Camera.Ray(ndc, e.Viewport.Width/e.Viewport.Height), nil
}

type PickResult struct {
	Handle *Handle
	Hit    scene.Hit
}

// Pick returns the handle under the pointer without changing any state.
func (g *Gizmo) Pick(ev PointerEvent) (PickResult, bool, error) {
	ray, err := ev.Ray()
	if err != nil {
		return PickResult{}, false, err
	}
	if g.target == nil {
		return PickResult{}, false, nil
	}
	g.sync()
	res, ok := g.pickRay(ray, ev.Camera)
	return res, ok, nil
}

// pickRay intersects ray with the enabled handles of the current mode.
// Handles whose constraint cannot be solved for this ray are passed over, so a
// handle seen end-on never hides the one behind it. Hits within TieTolerance
// of the nearest usable one are ordered by handle group.
func (g *Gizmo) pickRay(ray scene.Ray, cam Camera) (PickResult, bool) {
	byNode := make(map[*scene.Node]*Handle, len(g.handles))
	nodes := make([]*scene.Node, 0, len(g.handles))
	for _, h := range g.handles {
		if !h.Enabled || !h.Group.activeIn(g.mode) {
			continue
		}
		byNode[h.Node] = h
		nodes = append(nodes, h.Node)
	}

	tw := g.target.WorldTransform()
	hits := scene.IntersectNodes(ray, nodes)
	usable := hits[:0]
	for _, hit := range hits {
		c := g.constraintFor(byNode[hit.Node], tw, cam)
		if _, err := c.intersect(ray, g.cfg.ParallelLimit); err != nil {
			continue
		}
		usable = append(usable, hit)
	}
	if len(usable) == 0 {
		return PickResult{}, false
	}

	best := PickResult{Handle: byNode[usable[0].Node], Hit: usable[0]}
	for _, hit := range usable[1:] {
		if hit.T-usable[0].T > g.cfg.TieTolerance {
			break
		}
		if h := byNode[hit.Node]; h.Group < best.Handle.Group {
			best = PickResult{Handle: h, Hit: hit}
		}
	}
	return best, true
}
