package character

import (
	"testing"

	"coward3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func v3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func quad(a, b, c, d rl.Vector3) []physics.Triangle {
	return []physics.Triangle{{V0: a, V1: b, V2: c}, {V0: a, V1: c, V2: d}}
}

// floorQuad is an upward-facing rectangle at height y.
func floorQuad(y, minX, maxX, minZ, maxZ float32) []physics.Triangle {
	return quad(v3(minX, y, minZ), v3(minX, y, maxZ), v3(maxX, y, maxZ), v3(maxX, y, minZ))
}

// ceilingQuad is a downward-facing rectangle at height y.
func ceilingQuad(y, minX, maxX, minZ, maxZ float32) []physics.Triangle {
	return quad(v3(minX, y, minZ), v3(maxX, y, minZ), v3(maxX, y, maxZ), v3(minX, y, maxZ))
}

// wallX is a wall in the plane x = const facing -X, spanning y in [-1, 3].
func wallX(x, minZ, maxZ float32) []physics.Triangle {
	return quad(v3(x, -1, minZ), v3(x, -1, maxZ), v3(x, 3, maxZ), v3(x, 3, minZ))
}

// wallZ is a wall in the plane z = const facing -Z, spanning y in [-1, 3].
func wallZ(z, minX, maxX float32) []physics.Triangle {
	return quad(v3(minX, -1, z), v3(minX, 3, z), v3(maxX, 3, z), v3(maxX, -1, z))
}

func concat(parts ...[]physics.Triangle) []physics.Triangle {
	var out []physics.Triangle
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func level(t *testing.T, submeshes ...[]physics.Triangle) *physics.Mesh {
	t.Helper()
	m, err := physics.NewMesh(rl.MatrixIdentity(), submeshes...)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return m
}

func near(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func testPlayer(pos rl.Vector3) *Player {
	return NewPlayer(pos, v3(1, 2, 1), DefaultTuning().MoveSpeed)
}
