package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/glfwinput"
	"github.com/gekko3d/gizmo/internal/ui"
	"github.com/gekko3d/gizmo/scene"
)

type CLI struct {
	Width    int     `help:"Window width" default:"1280"`
	Height   int     `help:"Window height" default:"720"`
	Config   string  `help:"Gizmo configuration file (YAML)" type:"existingfile" short:"c"`
	Distance float32 `help:"Camera distance from the target" default:"800"`
	Debug    bool    `help:"Enable debug logging"`
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func (c *CLI) Run() error {
	cfg := gizmo.DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = gizmo.LoadConfig(c.Config); err != nil {
			return err
		}
	}
	logger := gizmo.NewDefaultLogger("gizmo", c.Debug)

	g, err := gizmo.New(cfg, gizmo.WithLogger(logger))
	if err != nil {
		return err
	}

	world := scene.NewNode("world")
	box := scene.NewNode("box")
	box.Shape = scene.Sphere{Radius: 20}
	world.Add(box, g.Node())
	g.Attach(box)

	g.OnDraggingStarted(func(ev gizmo.Event) {
		logger.Infof("drag started on %s (%s)", ev.Handle, ev.Mode)
	})
	g.OnChanged(func(ev gizmo.Event) {
		logger.Debugf("%s -> position %v scale %v", ev.Handle, ev.Transform.Position, ev.Transform.Scale)
	})
	g.OnDraggingStopped(func(ev gizmo.Event) {
		logger.Infof("drag stopped on %s (aborted=%t): position %v", ev.Handle, ev.Aborted, ev.Transform.Position)
	})

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(c.Width, c.Height, "gizmo", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Destroy()

	cam := scene.NewPerspectiveCamera(45, 1, 10000)
	cam.Target = mgl32.Vec3{}
	nav := newOrbit(cam, c.Distance)

	ctrl := glfwinput.NewController(g, func() gizmo.Camera { return cam })
	ctrl.Logger = logger
	ctrl.Fallthrough = nav.Navigate

	ui.PrintTitle("gizmo demo")
	ui.PrintInfo("W/E/R: translate/rotate/scale  Q: world/local  Esc: cancel  right drag: orbit")

	var state glfwinput.State
	title := ""
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for !win.ShouldClose() {
		<-ticker.C
		state.Poll(win)
		if _, err := ctrl.Frame(&state); err != nil {
			// Minimized windows report a zero viewport.
			logger.Debugf("input: %v", err)
		}

		next := fmt.Sprintf("gizmo [%s/%s] %s", g.Mode(), g.Space(), hovered(g))
		if next != title {
			title = next
			win.SetTitle(title)
		}
	}
	return nil
}

func hovered(g *gizmo.Gizmo) string {
	for _, h := range g.Handles() {
		if h.Highlighted {
			return h.ID.String()
		}
	}
	return ""
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gizmo-demo"),
		kong.Description("Interactive transform gizmo driven by a GLFW window"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
