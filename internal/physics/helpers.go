package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// degenerateLengthSqr is the squared length below which a vector is treated as zero.
const degenerateLengthSqr = 1e-12

// SafeNormalize returns v scaled to unit length. ok is false for near-zero vectors,
// in which case the zero vector is returned instead of NaN.
func SafeNormalize(v rl.Vector3) (rl.Vector3, bool) {
	lenSq := rl.Vector3DotProduct(v, v)
	if lenSq < degenerateLengthSqr {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(v, 1/math32.Sqrt(lenSq)), true
}

func axisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func vector3Min(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: math32.Min(a.X, b.X),
		Y: math32.Min(a.Y, b.Y),
		Z: math32.Min(a.Z, b.Z),
	}
}

func vector3Max(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: math32.Max(a.X, b.X),
		Y: math32.Max(a.Y, b.Y),
		Z: math32.Max(a.Z, b.Z),
	}
}

func centroid(t *Triangle) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(t.V0, t.V1), t.V2), 1.0/3.0)
}
