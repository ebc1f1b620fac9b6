package character

import (
	"coward3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var up = rl.Vector3{X: 0, Y: 1, Z: 0}

// Floor is the result of a floor probe.
type Floor struct {
	Found  bool
	Height float32
	Normal rl.Vector3
}

// ProbeFloor casts straight down from FloorProbeOffset above position and
// returns the closest surface whose normal points up by more than
// FloorMinNormalY. Walls and ceilings in the way are skipped.
func ProbeFloor(mesh *physics.Mesh, position rl.Vector3, tuning Tuning) Floor {
	origin := rl.Vector3{X: position.X, Y: position.Y + tuning.FloorProbeOffset, Z: position.Z}
	ray := physics.Ray{Origin: origin, Direction: rl.Vector3{X: 0, Y: -1, Z: 0}}

	hit := mesh.RaycastFunc(ray, physics.Unlimited, func(h physics.Hit) bool {
		return h.Normal.Y > tuning.FloorMinNormalY
	})
	if !hit.Hit {
		return Floor{Height: NoFloorHeight, Normal: up}
	}

	return Floor{
		Found:  true,
		Height: origin.Y - hit.Distance,
		Normal: hit.Normal,
	}
}
