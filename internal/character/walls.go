package character

import (
	"coward3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ResolveWalls pushes position out of steep geometry within radius of the
// player's vertical axis. Rays go out in WallDirections evenly spaced yaw
// angles starting at +X, each sampled at WallSamples heights from the feet
// to height. For every direction the first sample that finds a wall within
// radius moves the player along the wall normal by the penetration depth;
// the remaining samples of that direction are skipped.
//
// Directions are processed in order from the already corrected position.
// It returns the number of directions that applied a correction.
func ResolveWalls(mesh *physics.Mesh, position *rl.Vector3, radius, height float32, tuning Tuning) int {
	if mesh == nil || radius <= 0 || tuning.WallDirections <= 0 {
		return 0
	}

	corrections := 0
	for i := 0; i < tuning.WallDirections; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(tuning.WallDirections)
		dir := rl.Vector3{X: math32.Cos(angle), Y: 0, Z: math32.Sin(angle)}

		for j := 0; j < tuning.WallSamples; j++ {
			origin := *position
			origin.Y += sampleHeight(j, tuning.WallSamples, height)

			hit := mesh.Raycast(physics.Ray{Origin: origin, Direction: dir}, radius)
			if !hit.Hit || math32.Abs(hit.Normal.Y) >= tuning.WallMaxNormalY {
				continue
			}

			penetration := radius - hit.Distance
			if penetration < ContactSlop {
				continue
			}

			push, ok := wallPush(hit.Normal, dir)
			if !ok {
				continue
			}
			position.X += push.X * penetration
			position.Z += push.Z * penetration
			corrections++
			break
		}
	}

	return corrections
}

// ResolveWallsIterative repeats ResolveWalls until a pass makes no correction
// or WallIterations passes have run, so pushing out of one wall cannot leave
// the player inside a neighbouring one. It returns the total corrections.
func ResolveWallsIterative(mesh *physics.Mesh, position *rl.Vector3, radius, height float32, tuning Tuning) int {
	total := 0
	for i := 0; i < tuning.WallIterations; i++ {
		n := ResolveWalls(mesh, position, radius, height, tuning)
		total += n
		if n == 0 {
			break
		}
	}
	return total
}

func sampleHeight(j, samples int, height float32) float32 {
	if samples <= 1 {
		return 0
	}
	return height * float32(j) / float32(samples-1)
}

// wallPush returns the unit horizontal direction that moves away from a
// surface hit by a ray cast along dir. Back faces are flipped so the push
// always opposes the ray.
func wallPush(normal, dir rl.Vector3) (rl.Vector3, bool) {
	if rl.Vector3DotProduct(normal, dir) > 0 {
		normal = rl.Vector3Negate(normal)
	}
	return physics.SafeNormalize(rl.Vector3{X: normal.X, Y: 0, Z: normal.Z})
}
