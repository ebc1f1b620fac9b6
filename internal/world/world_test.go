package world

import (
	"testing"

	"coward3d/internal/character"
	"coward3d/internal/config"
	"coward3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func flatLevel(t *testing.T) *physics.Mesh {
	t.Helper()
	a := rl.Vector3{X: -50, Y: 0, Z: -50}
	b := rl.Vector3{X: -50, Y: 0, Z: 50}
	c := rl.Vector3{X: 50, Y: 0, Z: 50}
	d := rl.Vector3{X: 50, Y: 0, Z: -50}
	m, err := physics.NewMesh(rl.MatrixIdentity(), []physics.Triangle{{V0: a, V1: b, V2: c}, {V0: a, V1: c, V2: d}})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return m
}

func settle(w *World) {
	for i := 0; i < 300 && !w.Player.Grounded; i++ {
		w.Step(character.Input{}, 1.0/60.0)
	}
}

func TestNewUsesConfig(t *testing.T) {
	cfg := config.Default()
	w := New(flatLevel(t), cfg)

	if w.Player.Position != cfg.Player.Spawn {
		t.Errorf("Expected spawn %v, got %v", cfg.Player.Spawn, w.Player.Position)
	}
	if w.Player.MoveSpeed != cfg.Physics.MoveSpeed {
		t.Errorf("Expected move speed %f, got %f", cfg.Physics.MoveSpeed, w.Player.MoveSpeed)
	}
	if w.Player.Grounded {
		t.Error("Player should spawn airborne")
	}
	if w.Camera.Camera.Position != cfg.Camera.Position {
		t.Errorf("Expected camera at %v, got %v", cfg.Camera.Position, w.Camera.Camera.Position)
	}
}

func TestStepLandsAndMovesRelativeToCamera(t *testing.T) {
	w := New(flatLevel(t), config.Default())
	settle(w)
	if !w.Player.Grounded {
		t.Fatal("Player should land on the flat level")
	}

	startZ := w.Player.Position.Z
	for i := 0; i < 30; i++ {
		w.Step(character.Input{Move: rl.Vector2{Y: -1}}, 1.0/60.0)
	}

	// The default camera sits at +Z looking toward the origin, so W walks toward -Z.
	if w.Player.Position.Z >= startZ {
		t.Errorf("Expected to move toward -Z, z went %f -> %f", startZ, w.Player.Position.Z)
	}
	if w.Player.WishDirection.Z >= 0 {
		t.Errorf("Expected wish direction toward -Z, got %v", w.Player.WishDirection)
	}
	if w.Player.Facing.TargetYaw != math32.Atan2(-w.Player.WishDirection.X, -w.Player.WishDirection.Z) {
		t.Errorf("Facing should target the wish direction, got %f", w.Player.Facing.TargetYaw)
	}
}

func TestStepJump(t *testing.T) {
	w := New(flatLevel(t), config.Default())
	settle(w)

	res := w.Step(character.Input{Jump: true}, 1.0/60.0)

	if !res.Jumped || w.Player.Grounded {
		t.Errorf("Expected a jump, got %+v grounded=%v", res, w.Player.Grounded)
	}
	if w.Last != res {
		t.Error("Last should hold the most recent step result")
	}
}

func TestSetTuning(t *testing.T) {
	w := New(flatLevel(t), config.Default())
	tuning := character.DefaultTuning()
	tuning.MoveSpeed = 12
	tuning.Gravity = 30

	w.SetTuning(tuning)

	if w.Controller.Tuning.Gravity != 30 {
		t.Errorf("Expected gravity 30, got %f", w.Controller.Tuning.Gravity)
	}
	if w.Player.MoveSpeed != 12 {
		t.Errorf("Expected move speed 12, got %f", w.Player.MoveSpeed)
	}
}

func TestComputeRenderResolution(t *testing.T) {
	w, h := ComputeRenderResolution(1366, 768, 240)
	if w != 426 || h != 240 {
		t.Errorf("Expected 426x240, got %dx%d", w, h)
	}

	w, h = ComputeRenderResolution(800, 800, 240)
	if w != 240 || h != 240 {
		t.Errorf("Expected 240x240 for a square window, got %dx%d", w, h)
	}
}

func TestLetterboxRect(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, rw, rh int32
		want           rl.Rectangle
	}{
		{"exact multiple", 640, 480, 320, 240, rl.Rectangle{X: 0, Y: 0, Width: 640, Height: 480}},
		{"pillarbox", 1000, 480, 320, 240, rl.Rectangle{X: 180, Y: 0, Width: 640, Height: 480}},
		{"letterbox", 640, 600, 320, 240, rl.Rectangle{X: 0, Y: 60, Width: 640, Height: 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LetterboxRect(tt.sw, tt.sh, tt.rw, tt.rh); got != tt.want {
				t.Errorf("LetterboxRect = %+v, want %+v", got, tt.want)
			}
		})
	}
}
