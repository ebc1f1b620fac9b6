package character

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{math32.Pi / 2, math32.Pi / 2},
		{3 * math32.Pi / 2, -math32.Pi / 2},
		{-3 * math32.Pi / 2, math32.Pi / 2},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); !near(got, tt.want, 1e-4) {
			t.Errorf("WrapAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestLerpAngleTakesShortWay(t *testing.T) {
	got := LerpAngle(3, -3, 0.5)
	// The short way from 3 to -3 crosses π, not 0.
	if math32.Abs(got) < 3 {
		t.Errorf("Expected interpolation across ±π, got %f", got)
	}
}

func TestFacingTracksWishDirection(t *testing.T) {
	var f Facing

	f.Update(v3(1, 0, 0), 8, 1.0/60.0)
	want := math32.Atan2(-1, 0)
	if !near(f.TargetYaw, want, 1e-5) {
		t.Errorf("Expected target yaw %f, got %f", want, f.TargetYaw)
	}

	for i := 0; i < 200; i++ {
		f.Update(v3(1, 0, 0), 8, 1.0/60.0)
	}
	if !near(f.Yaw, want, 1e-3) {
		t.Errorf("Expected yaw to converge on %f, got %f", want, f.Yaw)
	}

	f.Update(v3(0, 0, 0), 8, 1.0/60.0)
	if !near(f.TargetYaw, want, 1e-5) {
		t.Errorf("Zero wish direction should keep the last target, got %f", f.TargetYaw)
	}
}
