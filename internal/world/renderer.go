package world

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var BackgroundColor = rl.NewColor(62, 70, 55, 255)

// Renderer draws the world into a low-resolution, point-filtered target and
// scales it up to the window with letterboxing.
type Renderer struct {
	Target       rl.RenderTexture2D
	RenderWidth  int32
	RenderHeight int32
	ScreenWidth  int32
	ScreenHeight int32

	LevelModel  rl.Model
	LevelScale  float32
	PlayerModel rl.Model
}

// NewRenderer must be called after the window is created.
func NewRenderer(screenWidth, screenHeight, renderHeight int32) *Renderer {
	rw, rh := ComputeRenderResolution(screenWidth, screenHeight, renderHeight)
	target := rl.LoadRenderTexture(rw, rh)
	rl.SetTextureFilter(target.Texture, rl.FilterPoint)

	return &Renderer{
		Target:       target,
		RenderWidth:  rw,
		RenderHeight: rh,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		LevelScale:   1,
	}
}

// ComputeRenderResolution keeps the window's aspect ratio at a fixed render height.
func ComputeRenderResolution(windowWidth, windowHeight, fixedHeight int32) (width, height int32) {
	aspect := float32(windowWidth) / float32(windowHeight)
	return int32(float32(fixedHeight) * aspect), fixedHeight
}

// LetterboxRect returns the largest centered rectangle in the screen that
// shows the render target at a uniform scale.
func LetterboxRect(screenWidth, screenHeight, renderWidth, renderHeight int32) rl.Rectangle {
	scale := math32.Min(
		float32(screenWidth)/float32(renderWidth),
		float32(screenHeight)/float32(renderHeight),
	)
	w := float32(renderWidth) * scale
	h := float32(renderHeight) * scale
	return rl.Rectangle{
		X:      (float32(screenWidth) - w) * 0.5,
		Y:      (float32(screenHeight) - h) * 0.5,
		Width:  w,
		Height: h,
	}
}

// Draw renders one frame. overlay, if set, is drawn at window resolution on top.
func (r *Renderer) Draw(w *World, overlay func()) {
	p := w.Player

	rl.BeginTextureMode(r.Target)
	rl.ClearBackground(BackgroundColor)
	rl.BeginMode3D(w.Camera.Camera)

	rl.DrawGrid(40, 4.0)
	rl.DrawModelEx(
		r.PlayerModel,
		p.Position,
		rl.Vector3{X: 0, Y: 1, Z: 0},
		p.Facing.Yaw*rl.Rad2deg,
		rl.Vector3{X: 1, Y: 1, Z: 1},
		rl.White,
	)
	rl.DrawModel(r.LevelModel, rl.Vector3{}, r.LevelScale, rl.White)

	rl.EndMode3D()
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Render textures are stored upside down
	source := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(r.Target.Texture.Width),
		Height: -float32(r.Target.Texture.Height),
	}
	dest := LetterboxRect(r.ScreenWidth, r.ScreenHeight, r.RenderWidth, r.RenderHeight)
	rl.DrawTexturePro(r.Target.Texture, source, dest, rl.Vector2{}, 0, rl.White)

	rl.DrawFPS(10, 10)
	if overlay != nil {
		overlay()
	}
	rl.EndDrawing()
}

func (r *Renderer) Unload() {
	rl.UnloadRenderTexture(r.Target)
}
