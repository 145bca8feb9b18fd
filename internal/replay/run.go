package replay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/scene"
)

var actions = map[string]struct{}{
	"down": {}, "move": {}, "up": {}, "leave": {}, "cancel": {},
	"hover": {}, "mode": {}, "space": {}, "attach": {}, "detach": {},
}

var pointerActions = map[string]bool{"down": true, "move": true, "hover": true}

func parseEventType(name string) (gizmo.EventType, error) {
	for _, t := range []gizmo.EventType{gizmo.EventDraggingStarted, gizmo.EventChanged, gizmo.EventDraggingStopped} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", name)
}

// StepResult records the gizmo state after one step.
type StepResult struct {
	Index     int
	Action    string
	Consumed  bool
	Handle    gizmo.HandleID
	Mode      gizmo.Mode
	Transform scene.Transform
	Err       error
}

type Report struct {
	Name   string
	Steps  []StepResult
	Events []gizmo.Event
	Final  scene.Transform
	// Failures lists mismatches against the script's expectations.
	Failures []string
}

func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}

// Tolerance is the component tolerance used for expectations.
const Tolerance = 1e-2

// Run executes s on a fresh gizmo. Step errors are recorded in the report;
// the returned error covers scripts that cannot be set up.
func Run(s *Script, logger gizmo.Logger) (*Report, error) {
	if logger == nil {
		logger = gizmo.NewNopLogger()
	}
	cfg, err := s.GizmoConfig()
	if err != nil {
		return nil, err
	}
	cam, err := s.Camera.build()
	if err != nil {
		return nil, err
	}
	g, err := gizmo.New(cfg, gizmo.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	target := scene.NewNode("target")
	if target.Local, err = s.Target.build(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if s.Parent != nil {
		parent := scene.NewNode("parent")
		if parent.Local, err = s.Parent.build(); err != nil {
			return nil, fmt.Errorf("parent: %w", err)
		}
		parent.Add(target)
	}
	g.Attach(target)

	report := &Report{Name: s.Name}
	for _, typ := range []gizmo.EventType{gizmo.EventDraggingStarted, gizmo.EventChanged, gizmo.EventDraggingStopped} {
		g.AddListener(typ, func(ev gizmo.Event) {
			report.Events = append(report.Events, ev)
		})
	}

	for i, st := range s.Steps {
		res := StepResult{Index: i + 1, Action: st.Action}
		res.Consumed, res.Err = runStep(g, target, cam, s.Viewport, st)
		if res.Err != nil {
			logger.Warnf("step %d (%s): %v", i+1, st.Action, res.Err)
		}
		res.Handle = g.ActiveHandle()
		res.Mode = g.Mode()
		res.Transform = target.WorldTransform()
		report.Steps = append(report.Steps, res)
	}
	report.Final = target.WorldTransform()

	if err := s.check(report); err != nil {
		return nil, err
	}
	return report, nil
}

func runStep(g *gizmo.Gizmo, target *scene.Node, cam testCamera, vp gizmo.Viewport, st Step) (bool, error) {
	switch st.Action {
	case "down", "move", "hover":
		ev, err := pointerEvent(cam, vp, st)
		if err != nil {
			return false, err
		}
		switch st.Action {
		case "down":
			return g.PointerDown(ev)
		case "move":
			return g.PointerMove(ev)
		default:
			id, err := g.Hover(ev)
			return id != gizmo.HandleNone, err
		}
	case "up":
		return g.PointerUp(), nil
	case "leave":
		return g.PointerLeave(), nil
	case "cancel":
		return g.Cancel(), nil
	case "mode":
		m, err := gizmo.ParseMode(st.Mode)
		if err != nil {
			return false, err
		}
		g.SetMode(m)
	case "space":
		sp, err := gizmo.ParseSpace(st.Space)
		if err != nil {
			return false, err
		}
		g.SetSpace(sp)
	case "attach":
		g.Attach(target)
	case "detach":
		g.Detach()
	}
	return false, nil
}

func pointerEvent(cam testCamera, vp gizmo.Viewport, st Step) (gizmo.PointerEvent, error) {
	ev := gizmo.PointerEvent{Camera: cam, Viewport: vp}
	if st.World != nil {
		w, err := st.World.vec3()
		if err != nil {
			return ev, fmt.Errorf("world: %w", err)
		}
		x, y, ok := scene.Project(cam, w, vp.Width, vp.Height)
		if !ok {
			return ev, fmt.Errorf("world point %v is not on screen", w)
		}
		ev.X, ev.Y = x, y
		return ev, nil
	}
	if len(st.At) != 2 {
		return ev, fmt.Errorf("at: expected 2 components, got %d", len(st.At))
	}
	ev.X, ev.Y = st.At[0], st.At[1]
	return ev, nil
}

func (s *Script) check(r *Report) error {
	if s.Expect != nil {
		if s.Expect.Position != nil {
			want, err := s.Expect.Position.vec3()
			if err != nil {
				return fmt.Errorf("expect position: %w", err)
			}
			if !scene.NearlyEqual(r.Final.Position, want, Tolerance) {
				r.Failures = append(r.Failures, fmt.Sprintf("position: got %v, want %v", r.Final.Position, want))
			}
		}
		if s.Expect.Rotation != nil {
			want, err := s.Expect.Rotation.quat()
			if err != nil {
				return fmt.Errorf("expect rotation: %w", err)
			}
			if !sameRotation(r.Final.Rotation, want) {
				r.Failures = append(r.Failures, fmt.Sprintf("rotation: got %v, want %v", r.Final.Rotation, want))
			}
		}
		if s.Expect.Scale != nil {
			want, err := s.Expect.Scale.vec3()
			if err != nil {
				return fmt.Errorf("expect scale: %w", err)
			}
			if !scene.NearlyEqual(r.Final.Scale, want, Tolerance) {
				r.Failures = append(r.Failures, fmt.Sprintf("scale: got %v, want %v", r.Final.Scale, want))
			}
		}
	}

	if s.Events != nil {
		got := make([]string, len(r.Events))
		for i, ev := range r.Events {
			got[i] = ev.Type.String()
		}
		if fmt.Sprint(got) != fmt.Sprint(s.Events) {
			r.Failures = append(r.Failures, fmt.Sprintf("events: got %v, want %v", got, s.Events))
		}
	}
	return nil
}

func sameRotation(a, b mgl32.Quat) bool {
	for _, v := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		if !scene.NearlyEqual(a.Rotate(v), b.Rotate(v), Tolerance) {
			return false
		}
	}
	return true
}
