package world

import (
	"coward3d/internal/camera"
	"coward3d/internal/character"
	"coward3d/internal/config"
	"coward3d/internal/physics"
)

// World is the simulation context: everything a frame step reads or
// writes. It is owned by the frame loop and passed explicitly.
type World struct {
	Level      *physics.Mesh
	Player     *character.Player
	Camera     *camera.Follow
	Controller *character.Controller

	// Last is the result of the most recent Step, for overlays.
	Last character.StepResult
}

// New builds a world around an already loaded collision mesh.
func New(level *physics.Mesh, cfg config.Config) *World {
	cam := camera.New(cfg.Camera.Position, cfg.Player.Spawn, cfg.Camera.Fovy)
	cam.Offset = cfg.Camera.Offset
	cam.Sharpness = cfg.Camera.Sharpness

	return &World{
		Level:      level,
		Player:     character.NewPlayer(cfg.Player.Spawn, cfg.Player.Size, cfg.Physics.MoveSpeed),
		Camera:     cam,
		Controller: character.NewController(cfg.Physics),
	}
}

// Step advances one frame: the camera follows last frame's position, input
// is turned into a camera-relative wish direction, the controller moves the
// player and the facing eases toward the direction of travel.
func (w *World) Step(in character.Input, deltaTime float32) character.StepResult {
	p := w.Player

	w.Camera.Update(p.Position, p.Size, deltaTime)
	p.WishDirection = w.Camera.WishDirection(in.Move)

	w.Last = w.Controller.Step(p, w.Level, in.Jump, deltaTime)
	p.Facing.Update(p.WishDirection, w.Controller.Tuning.TurnSpeed, deltaTime)

	return w.Last
}

// SetTuning swaps physics constants between frames.
func (w *World) SetTuning(t character.Tuning) {
	w.Controller.Tuning = t
	w.Player.MoveSpeed = t.MoveSpeed
}
