// Package ui hosts the ImGui window, the scene view and the debug panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the ImGui SDL backend and owns the window.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and GL context and loads GL entry points.
// vsync selects the swap interval for the new context.
func NewBackend(title string, width, height int, vsync bool) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
		imgui.CurrentIO().SetIniFilename("")
	})

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	b.backend.CreateWindow(title, width, height)

	if err := b.backend.SetSwapInterval(swapInterval(vsync)); err != nil {
		return nil, fmt.Errorf("set swap interval: %w", err)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// Run drives frames until the window closes. frame runs once per frame
// inside an ImGui frame on the GL thread.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// swapInterval maps the vsync setting to the SDL swap interval.
func swapInterval(vsync bool) sdlbackend.SDLWindowFlags {
	if vsync {
		return sdlbackend.SDLSwapIntervalVsync
	}
	return sdlbackend.SDLSwapIntervalImmediate
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area in logical pixels.
func Viewport() (posX, posY, width, height float32) {
	vp := imgui.MainViewport()
	pos := vp.WorkPos()
	size := vp.WorkSize()
	return pos.X, pos.Y, size.X, size.Y
}

// FramebufferSize returns the display size in physical pixels.
func FramebufferSize() (width, height int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	if scale.X <= 0 {
		scale.X = 1
	}
	if scale.Y <= 0 {
		scale.Y = 1
	}
	return int32(size.X * scale.X), int32(size.Y * scale.Y)
}

// IsKeyPressed reports whether key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// WantsKeyboard reports whether an ImGui widget is consuming key input.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
