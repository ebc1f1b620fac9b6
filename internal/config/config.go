package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"coward3d/internal/character"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config/coward3d.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int32  `yaml:"width"`
	Height       int32  `yaml:"height"`
	RenderHeight int32  `yaml:"render_height"`
	TargetFPS    int32  `yaml:"target_fps"`
}

type LevelConfig struct {
	Model string  `yaml:"model"`
	Scale float32 `yaml:"scale"`
}

type PlayerConfig struct {
	Model string     `yaml:"model"`
	Size  rl.Vector3 `yaml:"size"`
	Spawn rl.Vector3 `yaml:"spawn"`
}

type CameraConfig struct {
	Position  rl.Vector3 `yaml:"position"`
	Offset    rl.Vector3 `yaml:"offset"`
	Fovy      float32    `yaml:"fovy"`
	Sharpness float32    `yaml:"sharpness"`
}

type Config struct {
	Window  WindowConfig     `yaml:"window"`
	Level   LevelConfig      `yaml:"level"`
	Player  PlayerConfig     `yaml:"player"`
	Camera  CameraConfig     `yaml:"camera"`
	Physics character.Tuning `yaml:"physics"`
	// Watch enables hot reload of the physics section.
	Watch bool `yaml:"watch"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:        "Coward 3D!",
			Width:        1366,
			Height:       768,
			RenderHeight: 240,
			TargetFPS:    0,
		},
		Level: LevelConfig{
			Model: "assets/Bogmire Arena/bogmire-arena.obj",
			Scale: 2.0,
		},
		Player: PlayerConfig{
			Model: "assets/ShadowSlink.gltf",
			Size:  rl.Vector3{X: 1, Y: 2, Z: 1},
			Spawn: rl.Vector3{X: 0, Y: 5, Z: 0},
		},
		Camera: CameraConfig{
			Position:  rl.Vector3{X: 0, Y: 3, Z: 5},
			Fovy:      90,
			Sharpness: 2.0,
		},
		Physics: character.DefaultTuning(),
		Watch:   true,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.RenderHeight <= 0 {
		return fmt.Errorf("%w: window sizes must be positive", ErrInvalid)
	}
	if c.Level.Scale <= 0 {
		return fmt.Errorf("%w: level.scale must be positive", ErrInvalid)
	}
	if c.Player.Size.Y <= 0 {
		return fmt.Errorf("%w: player.size.y must be positive", ErrInvalid)
	}
	return ValidateTuning(c.Physics)
}

// ValidateTuning checks the physics section on its own, for hot reload.
func ValidateTuning(t character.Tuning) error {
	switch {
	case t.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	case t.MoveSpeed <= 0:
		return fmt.Errorf("%w: physics.move_speed must be positive", ErrInvalid)
	case t.CapsuleRadius <= 0:
		return fmt.Errorf("%w: physics.capsule_radius must be positive", ErrInvalid)
	case t.GroundEpsilon < 0:
		return fmt.Errorf("%w: physics.ground_epsilon must not be negative", ErrInvalid)
	case t.FloorProbeOffset <= 0:
		return fmt.Errorf("%w: physics.floor_probe_offset must be positive", ErrInvalid)
	case t.WallDirections < 1 || t.WallSamples < 1 || t.WallIterations < 1:
		return fmt.Errorf("%w: physics wall directions, samples and iterations must be at least 1", ErrInvalid)
	case t.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: physics.max_frame_delta must be positive", ErrInvalid)
	case t.KillPlaneY >= t.RespawnPoint.Y:
		return fmt.Errorf("%w: physics.kill_plane_y must be below the respawn point", ErrInvalid)
	}
	return nil
}
