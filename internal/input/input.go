package input

import (
	"coward3d/internal/character"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poll reads the movement keys and the jump edge for this frame.
func Poll() character.Input {
	return character.Input{
		Move: Axis(
			rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyA),
			rl.IsKeyDown(rl.KeyS), rl.IsKeyDown(rl.KeyD),
		),
		Jump: rl.IsKeyPressed(rl.KeySpace),
	}
}

// Axis combines WASD into raw axes: X is D minus A, Y is S minus W.
// Opposite keys cancel; diagonals are left unnormalized.
func Axis(w, a, s, d bool) rl.Vector2 {
	return rl.Vector2{
		X: key(d) - key(a),
		Y: key(s) - key(w),
	}
}

func key(down bool) float32 {
	if down {
		return 1
	}
	return 0
}
