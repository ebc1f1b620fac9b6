package game

import (
	"fmt"
	"log"

	"coward3d/internal/assets"
	"coward3d/internal/config"
	"coward3d/internal/input"
	"coward3d/internal/physics"
	"coward3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	ConfigPath string
	Config     config.Config

	World    *world.World
	Renderer *world.Renderer
	Assets   *assets.Manager
	Debug    DebugOverlay

	watcher *config.Watcher
}

// New loads the config. A broken config file is reported and the defaults
// are used so the game still starts.
func New(configPath string) *Game {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}
	return &Game{
		ConfigPath: configPath,
		Config:     cfg,
		Assets:     assets.NewManager(),
	}
}

func (g *Game) Run() error {
	win := g.Config.Window
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.TargetFPS)
	InitDebugStyle()

	defer g.Assets.Unload()
	if err := g.load(); err != nil {
		return err
	}
	defer g.Renderer.Unload()

	if g.Config.Watch {
		w, err := config.NewWatcher(g.ConfigPath)
		if err != nil {
			log.Printf("Config: hot reload disabled: %v", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Renderer.Draw(g.World, func() {
			if g.Debug.Draw(g.World) {
				if err := g.SaveTuning(); err != nil {
					log.Printf("Config: save failed: %v", err)
				}
			}
		})
	}
	return nil
}

func (g *Game) load() error {
	levelModel, err := g.Assets.LoadModel(g.Config.Level.Model)
	if err != nil {
		return err
	}
	playerModel, err := g.Assets.LoadModel(g.Config.Player.Model)
	if err != nil {
		return err
	}

	s := g.Config.Level.Scale
	mesh, err := physics.MeshFromModel(levelModel, rl.MatrixScale(s, s, s))
	if err != nil {
		return fmt.Errorf("level %s: %w", g.Config.Level.Model, err)
	}
	bounds := mesh.Bounds()
	log.Printf("Level: %d triangles in %d meshes, bounds %v - %v",
		mesh.TriangleCount(), mesh.SubmeshCount(), bounds.Min, bounds.Max)

	g.World = world.New(mesh, g.Config)
	g.Renderer = world.NewRenderer(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.RenderHeight)
	g.Renderer.LevelModel = levelModel
	g.Renderer.LevelScale = s
	g.Renderer.PlayerModel = playerModel
	return nil
}

// Update runs one simulation step using the measured frame time.
func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.Debug.Toggle()
	}
	g.reloadTuning()

	in := input.Poll()
	if g.Debug.Paused {
		return
	}
	g.World.Step(in, deltaTime)
}

// reloadTuning applies an edited physics section between frames.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.PollError(); err != nil {
		log.Printf("Config: watch: %v", err)
	}
	if !g.watcher.Poll() {
		return
	}
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		log.Printf("Config: reload failed: %v", err)
		return
	}
	g.Config.Physics = cfg.Physics
	g.World.SetTuning(cfg.Physics)
	log.Println("Config: physics tuning reloaded")
}

// SaveTuning writes the live physics constants back to the config file.
// With hot reload on, the watcher then reloads the same values.
func (g *Game) SaveTuning() error {
	g.Config.Physics = g.World.Controller.Tuning
	if err := config.Save(g.ConfigPath, g.Config); err != nil {
		return err
	}
	log.Printf("Config: tuning saved to %s", g.ConfigPath)
	return nil
}
