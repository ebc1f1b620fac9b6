package character

import rl "github.com/gen2brain/raylib-go/raylib"

// Player is the kinematic state of the controlled character. Position is
// the point between the feet. Only Controller.Step mutates it.
type Player struct {
	Position rl.Vector3
	// Size is the render extents; Size.Y is also the height the wall probe samples.
	Size          rl.Vector3
	WishDirection rl.Vector3
	Velocity      rl.Vector3
	MoveSpeed     float32
	Grounded      bool
	Facing        Facing
}

// NewPlayer creates an airborne player at spawn.
func NewPlayer(spawn, size rl.Vector3, moveSpeed float32) *Player {
	return &Player{
		Position:  spawn,
		Size:      size,
		MoveSpeed: moveSpeed,
	}
}

// Input is the per-frame intent fed into a simulation step.
type Input struct {
	// Move holds raw axes: X is right, Y is backward (S minus W).
	Move rl.Vector2
	// Jump is true only on the frame the jump key went down.
	Jump bool
}
