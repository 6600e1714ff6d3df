// Package app wires the cube controller, renderer and debug panel into the
// ImGui render loop.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/cube-tweaks/internal/config"
	"github.com/Faultbox/cube-tweaks/internal/controls"
	"github.com/Faultbox/cube-tweaks/internal/cube"
	"github.com/Faultbox/cube-tweaks/internal/engine/camera"
	"github.com/Faultbox/cube-tweaks/internal/engine/debug"
	"github.com/Faultbox/cube-tweaks/internal/engine/framebuffer"
	"github.com/Faultbox/cube-tweaks/internal/engine/renderer"
	"github.com/Faultbox/cube-tweaks/internal/engine/ui"
	"github.com/Faultbox/cube-tweaks/internal/logger"
	"github.com/Faultbox/cube-tweaks/internal/tweaks"
)

// Title is the window title.
const Title = "Cube Tweaks"

var clearColor = [4]float32{0, 0, 0, 1}

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	backend  *ui.Backend
	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera
	cube     *cube.Controller
	texture  *textureSlot

	panel *controls.Panel
	debug *tweaks.Debug
	view  ui.SceneView
	shots *debug.Screenshots
	clock *clock

	screenshotRequested bool
	pendingTexture      chan string
	status              string
	statusUntil         time.Time
}

// New creates the window, GL resources and the cube.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:            cfg,
		log:            logger.Named("app"),
		pendingTexture: make(chan string, 1),
		shots:          debug.NewScreenshots(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
	}

	var err error
	a.backend, err = ui.NewBackend(Title, cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.VSync)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	a.renderer, err = renderer.New()
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	a.fb, err = framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		a.renderer.Close()
		return nil, fmt.Errorf("create framebuffer: %w", err)
	}

	a.camera = camera.NewOrbitCamera(cfg.Graphics.CameraDistance)
	a.camera.FOV = cfg.Graphics.FOV
	a.camera.Near = cfg.Graphics.Near
	a.camera.Far = cfg.Graphics.Far
	a.camera.Damping = cfg.Graphics.Damping
	a.camera.SetAspect(a.fb.Aspect())

	opts, err := tweaks.Options(cfg.Cube)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("cube options: %w", err)
	}
	a.cube = cube.New(opts, a.renderer)
	a.texture = newTextureSlot(a.renderer, a.cube, &cfg.Cube)

	if cfg.Cube.Material == config.MaterialTextured {
		path := cfg.Cube.Texture
		if err := a.texture.loadOrChecker(path); err != nil {
			a.log.Warn("texture unavailable, using checkerboard", zap.String("path", path), zap.Error(err))
			a.notify("Texture not found")
		} else {
			a.showTextureName(path)
		}
	}

	a.panel = controls.NewPanel("Debug")
	a.debug = tweaks.Register(a.panel.AddFolder(tweaks.FolderName), a.cube, cfg.Cube)
	a.registerViewerControls(a.panel.AddFolder("Viewer"))
	// The panel starts collapsed.
	a.panel.Close()

	a.log.Info("viewer ready",
		zap.String("variant", cfg.Cube.Variant),
		zap.Int("subdivision", a.cube.State().Subdivision),
		zap.String("material", cfg.Cube.Material),
	)
	return a, nil
}

func (a *App) registerViewerControls(f *controls.Folder) {
	f.AddAction("Load Texture...", a.openTextureDialog)
	f.AddAction("Clear Texture", a.clearTexture)
	f.AddAction("Save Settings", a.saveSettings)
	f.AddAction("Screenshot (F12)", func() { a.screenshotRequested = true })
	f.AddNumber("damping",
		func() float64 { return float64(a.camera.Damping) },
		func(v float64) { a.camera.Damping = float32(v) },
	).Min(0).Max(1).Step(0.01).Name("Camera Damping")
}

// Run drives the render loop until the window closes.
func (a *App) Run() {
	a.clock = newClock(time.Now())
	a.backend.Run(a.frame)
}

func (a *App) frame() {
	dt := a.clock.tick(time.Now())

	// Captures read the previous frame's scene.
	if a.screenshotRequested {
		a.screenshotRequested = false
		a.captureScreenshot()
	}

	select {
	case path := <-a.pendingTexture:
		a.loadTexture(path)
	default:
	}

	a.handleKeys()

	a.cube.Update(dt)
	a.camera.Update()

	w, h := ui.FramebufferSize()
	if a.fb.Resize(w, h) {
		a.camera.SetAspect(a.fb.Aspect())
		a.log.Debug("viewport resized", zap.Int32("width", w), zap.Int32("height", h))
	}

	a.renderScene()

	in := a.view.Draw(a.fb.Texture())
	if in.DragX != 0 || in.DragY != 0 {
		a.camera.HandleDrag(in.DragX, in.DragY)
	}
	if in.Wheel != 0 {
		a.camera.HandleZoom(in.Wheel)
	}

	ui.DrawPanel(a.panel, a.statusLine())
}

func (a *App) handleKeys() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshotRequested = true
	}
	if ui.WantsKeyboard() {
		return
	}
	if ui.IsKeyPressed(imgui.KeyH) {
		a.panel.Toggle()
	}
	if ui.IsKeyPressed(imgui.KeyEscape) {
		a.panel.Close()
	}
}

func (a *App) renderScene() {
	restore := a.fb.Bind()
	defer restore()

	a.fb.Clear(clearColor)
	if !a.cube.Visible() {
		return
	}

	model := a.cube.ModelMatrix()
	mvp := a.camera.ProjectionMatrix().Mul(a.camera.ViewMatrix()).Mul(model)
	a.renderer.Draw(a.cube.Buffers(), a.cube.Material(), mvp)
}

func (a *App) captureScreenshot() {
	path, err := a.shots.Save(a.fb.Image())
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		a.notify("Screenshot failed")
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.notify("Saved " + filepath.Base(path))
}

// openTextureDialog asks for an image on a separate goroutine; the result is
// picked up by the next frame on the GL thread.
func (a *App) openTextureDialog() {
	go func() {
		path, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp").
			Filter("All Files", "*").
			Title("Load Texture").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				a.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case a.pendingTexture <- path:
		default:
		}
	}()
}

// loadTexture replaces the cube texture with the file picked in the dialog.
// A file that cannot be decoded keeps the current material.
func (a *App) loadTexture(path string) {
	if err := a.texture.load(path); err != nil {
		a.log.Warn("texture load failed", zap.String("path", path), zap.Error(err))
		a.notify("Cannot load " + filepath.Base(path))
		return
	}
	a.log.Info("texture loaded", zap.String("path", path))
	a.notify("Loaded " + filepath.Base(path))
	a.showTextureName(path)
}

func (a *App) clearTexture() {
	if !a.texture.active() {
		return
	}
	a.texture.clear()
	a.log.Info("texture cleared")
	a.notify("Texture cleared")
	a.backend.SetWindowTitle(Title)
}

func (a *App) showTextureName(path string) {
	a.backend.SetWindowTitle(fmt.Sprintf("%s - %s", Title, filepath.Base(path)))
}

func (a *App) saveSettings() {
	tweaks.Store(&a.cfg.Cube, a.cube, a.debug)
	path, err := a.cfg.Save()
	if err != nil {
		a.log.Error("saving settings failed", zap.Error(err))
		a.notify("Save failed")
		return
	}
	a.log.Info("settings saved", zap.String("path", path))
	a.notify("Settings saved")
}

func (a *App) notify(msg string) {
	a.status = msg
	a.statusUntil = time.Now().Add(3 * time.Second)
}

func (a *App) statusLine() string {
	fps := 0
	if a.clock != nil {
		fps = a.clock.fps
	}
	line := fmt.Sprintf("%d FPS  |  H hides panel", fps)
	if a.status != "" && time.Now().Before(a.statusUntil) {
		line = a.status + "  |  " + line
	}
	return line
}

// Close releases GPU resources.
func (a *App) Close() {
	if a.cube != nil {
		a.cube.Close()
	}
	if a.texture != nil {
		a.texture.release()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.fb != nil {
		a.fb.Destroy()
	}
	a.log.Info("viewer closed")
}
