package character

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Facing eases the player's visual yaw toward the direction of travel.
// Angles are in radians; yaw 0 faces -Z.
type Facing struct {
	Yaw       float32
	TargetYaw float32
}

// Update retargets on non-zero wish direction and eases Yaw by turnSpeed*dt.
func (f *Facing) Update(wish rl.Vector3, turnSpeed, dt float32) {
	if rl.Vector3DotProduct(wish, wish) > 0.0001 {
		f.TargetYaw = math32.Atan2(-wish.X, -wish.Z)
	}
	f.Yaw = LerpAngle(f.Yaw, f.TargetYaw, turnSpeed*dt)
}

// WrapAngle maps a into [-π, π].
func WrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a < -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

// LerpAngle interpolates from a toward b the short way around.
func LerpAngle(a, b, t float32) float32 {
	return a + WrapAngle(b-a)*t
}
