package camera

import (
	"coward3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Follow is a third-person camera that eases its look target toward the
// player and exposes a horizontal basis for camera-relative movement.
type Follow struct {
	Camera rl.Camera3D

	// Forward points from the target back toward the camera, flattened to
	// the ground plane; pressing S moves along it. Right is up × Forward.
	Forward rl.Vector3
	Right   rl.Vector3

	TargetPosition rl.Vector3
	// Offset from the look target to the camera position. Zero keeps the
	// camera where it was placed and only turns it.
	Offset    rl.Vector3
	Sharpness float32
}

func New(position, target rl.Vector3, fovy float32) *Follow {
	f := &Follow{
		Camera: rl.Camera3D{
			Position:   position,
			Target:     target,
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       fovy,
			Projection: rl.CameraPerspective,
		},
		Forward:   rl.Vector3{X: 0, Y: 0, Z: 1},
		Right:     rl.Vector3{X: 1, Y: 0, Z: 0},
		Sharpness: 2.0,
	}
	f.updateBasis()
	return f
}

// Update eases the camera toward a point half the player's height above
// its feet and recomputes the movement basis.
func (f *Follow) Update(playerPos, playerSize rl.Vector3, deltaTime float32) {
	f.TargetPosition = rl.Vector3Add(playerPos, rl.Vector3{X: 0, Y: playerSize.Y / 2, Z: 0})

	t := f.Sharpness * deltaTime
	if t > 1 {
		t = 1
	}
	f.Camera.Target = rl.Vector3Lerp(f.Camera.Target, f.TargetPosition, t)

	if f.Offset != (rl.Vector3{}) {
		f.Camera.Position = rl.Vector3Add(f.Camera.Target, f.Offset)
	}

	f.updateBasis()
}

// updateBasis keeps the previous basis when the camera looks straight down
// and the flattened forward vector vanishes.
func (f *Follow) updateBasis() {
	forward := rl.Vector3Subtract(f.Camera.Position, f.Camera.Target)
	forward.Y = 0
	forward, ok := physics.SafeNormalize(forward)
	if !ok {
		return
	}
	right, ok := physics.SafeNormalize(rl.Vector3CrossProduct(f.Camera.Up, forward))
	if !ok {
		return
	}
	f.Forward = forward
	f.Right = right
}

// WishDirection turns raw input axes (x = right, y = backward) into a unit
// horizontal direction relative to the camera. No input gives the zero vector.
func (f *Follow) WishDirection(axis rl.Vector2) rl.Vector3 {
	wish := rl.Vector3Add(
		rl.Vector3Scale(f.Forward, axis.Y),
		rl.Vector3Scale(f.Right, axis.X),
	)
	wish, _ = physics.SafeNormalize(wish)
	return wish
}
