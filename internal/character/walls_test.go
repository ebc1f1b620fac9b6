package character

import (
	"testing"

	"coward3d/internal/physics"
)

func TestResolveWallsPushesOutByPenetration(t *testing.T) {
	mesh := level(t, wallX(0.3, -5, 5))
	tuning := DefaultTuning()
	pos := v3(0, 0, 0)

	n := ResolveWalls(mesh, &pos, 0.5, 2, tuning)

	if n != 1 {
		t.Errorf("Expected 1 correction, got %d", n)
	}
	if !near(pos.X, -0.2, 1e-4) {
		t.Errorf("Expected x pushed back to -0.2, got %f", pos.X)
	}
	if !near(pos.Z, 0, 1e-5) || pos.Y != 0 {
		t.Errorf("Correction should only move along the wall normal, got %v", pos)
	}

	hit := mesh.Raycast(physics.Ray{Origin: pos, Direction: v3(1, 0, 0)}, physics.Unlimited)
	if !hit.Hit || hit.Distance < 0.5-1e-4 {
		t.Errorf("Re-cast should find the wall at the radius, got %+v", hit)
	}
}

func TestResolveWallsBackFacePushesTowardRayOrigin(t *testing.T) {
	// Same wall, reversed winding so its normal points +X.
	front := wallX(0.3, -5, 5)
	back := make([]physics.Triangle, len(front))
	for i, tri := range front {
		back[i] = physics.Triangle{V0: tri.V0, V1: tri.V2, V2: tri.V1}
	}
	mesh := level(t, back)
	pos := v3(0, 0, 0)

	ResolveWalls(mesh, &pos, 0.5, 2, DefaultTuning())

	if !near(pos.X, -0.2, 1e-4) {
		t.Errorf("Expected x pushed back to -0.2, got %f", pos.X)
	}
}

func TestResolveWallsIgnoresDistantWalls(t *testing.T) {
	mesh := level(t, wallX(0.6, -5, 5))
	pos := v3(0, 0, 0)

	if n := ResolveWalls(mesh, &pos, 0.5, 2, DefaultTuning()); n != 0 {
		t.Errorf("Expected no correction, got %d", n)
	}
	if pos != v3(0, 0, 0) {
		t.Errorf("Position should be unchanged, got %v", pos)
	}
}

func TestResolveWallsIgnoresGentleSlopes(t *testing.T) {
	// y = 0.2x - 0.05, normal.y ≈ 0.98
	slope := func(x float32) float32 { return 0.2*x - 0.05 }
	mesh := level(t, quad(
		v3(-5, slope(-5), -5), v3(-5, slope(-5), 5),
		v3(5, slope(5), 5), v3(5, slope(5), -5),
	))
	pos := v3(0, 0, 0)

	if n := ResolveWalls(mesh, &pos, 0.5, 2, DefaultTuning()); n != 0 {
		t.Errorf("Walkable slope should not be treated as a wall, got %d corrections", n)
	}
}

func TestResolveWallsUsesHigherSamples(t *testing.T) {
	// Overhang that only the head-height sample reaches.
	overhang := quad(v3(0.3, 1.5, -5), v3(0.3, 1.5, 5), v3(0.3, 3, 5), v3(0.3, 3, -5))
	mesh := level(t, overhang)
	pos := v3(0, 0, 0)

	n := ResolveWalls(mesh, &pos, 0.5, 2, DefaultTuning())

	if n != 1 {
		t.Fatalf("Expected 1 correction from the top sample, got %d", n)
	}
	if !near(pos.X, -0.2, 1e-4) {
		t.Errorf("Expected x pushed back to -0.2, got %f", pos.X)
	}
}

func TestResolveWallsIterativeCorner(t *testing.T) {
	mesh := level(t, concat(wallX(0.3, -5, 5), wallZ(0.3, -5, 5)))
	tuning := DefaultTuning()
	pos := v3(0, 0, 0)

	total := ResolveWallsIterative(mesh, &pos, 0.5, 2, tuning)

	if total < 2 {
		t.Errorf("Expected at least 2 corrections, got %d", total)
	}
	if !near(pos.X, -0.2, 1e-3) || !near(pos.Z, -0.2, 1e-3) {
		t.Errorf("Expected corner resolution at (-0.2, -0.2), got (%f, %f)", pos.X, pos.Z)
	}
	if n := ResolveWalls(mesh, &pos, 0.5, 2, tuning); n != 0 {
		t.Errorf("Resolved position should be stable, got %d more corrections", n)
	}
}

func TestResolveWallsIterativeStopsAtCap(t *testing.T) {
	mesh := level(t, concat(wallX(0.3, -5, 5), wallX(-0.3, -5, 5)))
	tuning := DefaultTuning()
	tuning.WallIterations = 2
	pos := v3(0, 0, 0)

	// A corridor narrower than the capsule can never settle.
	total := ResolveWallsIterative(mesh, &pos, 0.5, 2, tuning)

	if total > tuning.WallIterations*tuning.WallDirections {
		t.Errorf("Corrections exceed the iteration cap: %d", total)
	}
}

func TestResolveWallsNilMesh(t *testing.T) {
	pos := v3(1, 2, 3)
	if n := ResolveWalls(nil, &pos, 0.5, 2, DefaultTuning()); n != 0 || pos != v3(1, 2, 3) {
		t.Errorf("Nil mesh should be a no-op, got %d corrections at %v", n, pos)
	}
}
