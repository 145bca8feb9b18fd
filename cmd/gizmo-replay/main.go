package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/internal/replay"
	"github.com/gekko3d/gizmo/internal/ui"
	"github.com/gekko3d/gizmo/scene"
)

type CLI struct {
	Scripts []string `arg:"" help:"Replay scripts (YAML)" type:"existingfile"`
	Verbose bool     `help:"Print every step and event" short:"v"`
	Debug   bool     `help:"Enable gizmo debug logging"`
}

func (c *CLI) Run() error {
	logger := gizmo.NewDefaultLogger("gizmo", c.Debug)

	failed := 0
	for _, path := range c.Scripts {
		s, err := replay.Load(path)
		if err != nil {
			ui.PrintError(path + ": " + err.Error())
			failed++
			continue
		}
		r, err := replay.Run(s, logger)
		if err != nil {
			ui.PrintError(path + ": " + err.Error())
			failed++
			continue
		}
		printReport(path, r, c.Verbose)
		if !r.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(c.Scripts))
	}
	ui.PrintSuccess(fmt.Sprintf("%d scripts passed", len(c.Scripts)))
	return nil
}

func printReport(path string, r *replay.Report, verbose bool) {
	name := r.Name
	if name == "" {
		name = path
	}
	ui.PrintHeader(name)
	ui.PrintStep(fmt.Sprintf("%d steps, %d events", len(r.Steps), len(r.Events)))

	if verbose {
		rows := make([][]string, 0, len(r.Steps))
		for _, st := range r.Steps {
			status := "-"
			if st.Consumed {
				status = "consumed"
			}
			if st.Err != nil {
				status = st.Err.Error()
			}
			rows = append(rows, []string{
				fmt.Sprint(st.Index), st.Action, st.Handle.String(), st.Mode.String(), formatTransform(st.Transform), status,
			})
		}
		ui.PrintTable([]int{3, 7, 6, 9, 40, 20}, []string{"#", "Action", "Handle", "Mode", "Transform", "Result"}, rows)

		for _, ev := range r.Events {
			ui.PrintItem(fmt.Sprintf("%s %s (aborted=%t)", ev.Type, ev.Handle, ev.Aborted))
		}
	}

	for _, w := range stepWarnings(r) {
		ui.PrintWarning(w)
	}
	ui.PrintKeyValue("Final", formatTransform(r.Final))
	if r.Passed() {
		ui.PrintSuccess("passed")
		return
	}
	for _, f := range r.Failures {
		ui.PrintError(f)
	}
}

// stepWarnings describes the steps the gizmo rejected with an error.
func stepWarnings(r *replay.Report) []string {
	var out []string
	for _, st := range r.Steps {
		if st.Err != nil {
			out = append(out, fmt.Sprintf("step %d (%s): %v", st.Index, st.Action, st.Err))
		}
	}
	return out
}

func formatTransform(t scene.Transform) string {
	return fmt.Sprintf("p=(%.2f %.2f %.2f) s=(%.2f %.2f %.2f)",
		t.Position.X(), t.Position.Y(), t.Position.Z(),
		t.Scale.X(), t.Scale.Y(), t.Scale.Z())
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gizmo-replay"),
		kong.Description("Replay scripted pointer sessions against a transform gizmo"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
