package assets

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager caches loaded models by path. It is owned by the game loop and
// must only be used after the window (GL context) exists.
type Manager struct {
	models map[string]rl.Model
}

func NewManager() *Manager {
	return &Manager{models: make(map[string]rl.Model)}
}

// LoadModel returns the cached model for path, loading it on first use.
// raylib substitutes a default cube for unreadable files, so existence is
// checked up front to surface a real error.
func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, exists := m.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("assets: load model %s: %w", path, err)
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("assets: load model %s: no meshes", path)
	}
	m.models[path] = model
	return model, nil
}

func (m *Manager) Unload() {
	for _, model := range m.models {
		rl.UnloadModel(model)
	}
	m.models = make(map[string]rl.Model)
}
