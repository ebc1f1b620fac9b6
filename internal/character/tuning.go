package character

import rl "github.com/gen2brain/raylib-go/raylib"

// NoFloorHeight is reported by ProbeFloor when nothing below the player qualifies as floor.
const NoFloorHeight = -1e6

// ContactSlop is the smallest wall penetration that triggers a correction.
const ContactSlop = 1e-4

// Tuning holds the constants of the movement model. The zero value is not
// usable; start from DefaultTuning.
type Tuning struct {
	Gravity   float32 `yaml:"gravity"`
	JumpPower float32 `yaml:"jump_power"`
	MoveSpeed float32 `yaml:"move_speed"`
	TurnSpeed float32 `yaml:"turn_speed"`

	CapsuleRadius float32 `yaml:"capsule_radius"`
	GroundEpsilon float32 `yaml:"ground_epsilon"`

	// Floor probe rays start this far above the player, above any expected geometry.
	FloorProbeOffset float32 `yaml:"floor_probe_offset"`
	FloorMinNormalY  float32 `yaml:"floor_min_normal_y"`

	WallMaxNormalY float32 `yaml:"wall_max_normal_y"`
	WallDirections int     `yaml:"wall_directions"`
	WallSamples    int     `yaml:"wall_samples"`
	WallIterations int     `yaml:"wall_iterations"`

	KillPlaneY   float32    `yaml:"kill_plane_y"`
	RespawnPoint rl.Vector3 `yaml:"respawn_point"`

	// MaxFrameDelta caps dt for a single step (window drags, breakpoints).
	MaxFrameDelta float32 `yaml:"max_frame_delta"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          9.81,
		JumpPower:        8.0,
		MoveSpeed:        5.0,
		TurnSpeed:        8.0,
		CapsuleRadius:    0.5,
		GroundEpsilon:    0.1,
		FloorProbeOffset: 100.0,
		FloorMinNormalY:  0.01,
		WallMaxNormalY:   0.9,
		WallDirections:   8,
		WallSamples:      3,
		WallIterations:   3,
		KillPlaneY:       -10.0,
		RespawnPoint:     rl.Vector3{X: 0, Y: 5, Z: 0},
		MaxFrameDelta:    0.1,
	}
}
