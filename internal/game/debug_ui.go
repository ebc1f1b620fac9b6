package game

import (
	"fmt"

	"coward3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	debugPanelX     = 10
	debugPanelY     = 36
	debugPanelWidth = 280
	debugRowHeight  = 22
)

var (
	colorPanel      = rl.NewColor(18, 20, 16, 220)
	colorElement    = rl.NewColor(40, 46, 36, 255)
	colorHover      = rl.NewColor(56, 64, 50, 255)
	colorAccent     = rl.NewColor(168, 196, 96, 255)
	colorText       = rl.NewColor(210, 214, 200, 255)
	colorTextBright = rl.NewColor(255, 255, 255, 255)
)

// InitDebugStyle applies the overlay theme. Call once after the window exists.
func InitDebugStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextBright))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextBright))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(70, 78, 62, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 10)
}

// DebugOverlay shows controller state and exposes live tuning sliders.
// Toggled with F1.
type DebugOverlay struct {
	Visible bool
	Paused  bool
}

// Toggle shows or hides the panel. Hiding it also resumes the simulation.
func (d *DebugOverlay) Toggle() {
	d.Visible = !d.Visible
	if !d.Visible {
		d.Paused = false
	}
}

// Draw renders the panel and applies any slider changes to the world.
// It returns true when "Save tuning" was pressed.
func (d *DebugOverlay) Draw(w *world.World) bool {
	if !d.Visible {
		return false
	}

	p := w.Player
	last := w.Last
	tuning := w.Controller.Tuning

	rows := []string{
		fmt.Sprintf("pos  %.2f %.2f %.2f", p.Position.X, p.Position.Y, p.Position.Z),
		fmt.Sprintf("vel  %.2f %.2f %.2f", p.Velocity.X, p.Velocity.Y, p.Velocity.Z),
		fmt.Sprintf("grounded %v", p.Grounded),
		floorLabel(last.Floor.Found, last.Floor.Height),
		fmt.Sprintf("wall corrections %d", last.WallCorrections),
		fmt.Sprintf("level %d tris / %d meshes", w.Level.TriangleCount(), w.Level.SubmeshCount()),
	}

	height := float32(len(rows)+6) * debugRowHeight
	gui.Panel(rl.Rectangle{X: debugPanelX, Y: debugPanelY, Width: debugPanelWidth, Height: height}, "Controller")

	y := float32(debugPanelY + debugRowHeight + 4)
	for _, row := range rows {
		gui.Label(d.row(y), row)
		y += debugRowHeight
	}

	changed := false
	slider := func(label string, value *float32, min, max float32) {
		bounds := d.row(y)
		bounds.X += 90
		bounds.Width -= 130
		gui.Label(d.row(y), label)
		v := gui.Slider(bounds, "", fmt.Sprintf("%.1f", *value), *value, min, max)
		if v != *value {
			*value = v
			changed = true
		}
		y += debugRowHeight
	}
	slider("move speed", &tuning.MoveSpeed, 0.5, 20)
	slider("jump power", &tuning.JumpPower, 0, 20)
	slider("gravity", &tuning.Gravity, 0.5, 40)
	if changed {
		w.SetTuning(tuning)
	}

	d.Paused = gui.CheckBox(rl.Rectangle{X: debugPanelX + 8, Y: y + 2, Width: 16, Height: 16}, "Pause simulation", d.Paused)
	y += debugRowHeight

	return gui.Button(d.row(y), "Save tuning")
}

func (d *DebugOverlay) row(y float32) rl.Rectangle {
	return rl.Rectangle{X: debugPanelX + 8, Y: y, Width: debugPanelWidth - 16, Height: debugRowHeight}
}

func floorLabel(found bool, height float32) string {
	if !found {
		return "floor none"
	}
	return fmt.Sprintf("floor %.3f", height)
}
