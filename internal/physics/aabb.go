package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// emptyAABB returns an inverted box that any Extend call will overwrite.
func emptyAABB() AABB {
	return AABB{
		Min: rl.Vector3{X: math32.MaxFloat32, Y: math32.MaxFloat32, Z: math32.MaxFloat32},
		Max: rl.Vector3{X: -math32.MaxFloat32, Y: -math32.MaxFloat32, Z: -math32.MaxFloat32},
	}
}

// Extend grows the box to contain p.
func (a AABB) Extend(p rl.Vector3) AABB {
	a.Min = vector3Min(a.Min, p)
	a.Max = vector3Max(a.Max, p)
	return a
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: vector3Min(a.Min, b.Min), Max: vector3Max(a.Max, b.Max)}
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// RayEntry runs a slab test and returns the distance at which the ray enters
// the box (0 when the origin is inside). ok is false when the ray misses or
// the entry lies beyond maxDistance.
func (a AABB) RayEntry(origin, direction rl.Vector3, maxDistance float32) (float32, bool) {
	tmin := float32(0)
	tmax := maxDistance

	for axis := 0; axis < 3; axis++ {
		o := axisValue(origin, axis)
		d := axisValue(direction, axis)
		lo := axisValue(a.Min, axis)
		hi := axisValue(a.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	return tmin, true
}
