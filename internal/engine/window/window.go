// Package window holds the platform glue around the viewer window: main
// thread pinning, host information and native error reporting.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Host describes the machine the viewer runs on.
type Host struct {
	Platform   string
	CPUs       int
	RAMMB      int
	SDLVersion string
}

// Fields returns the host as zap fields for a startup log line.
func (h Host) Fields() []zap.Field {
	return []zap.Field{
		zap.String("platform", h.Platform),
		zap.Int("cpus", h.CPUs),
		zap.Int("ram_mb", h.RAMMB),
		zap.String("sdl", h.SDLVersion),
	}
}

// Describe queries SDL for host information. It does not need SDL_Init.
func Describe() Host {
	var v sdl.Version
	sdl.GetVersion(&v)
	return Host{
		Platform:   sdl.GetPlatform(),
		CPUs:       sdl.GetCPUCount(),
		RAMMB:      sdl.GetSystemRAM(),
		SDLVersion: fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch),
	}
}

// ShowError displays a modal error box. It works before any window exists,
// which makes it usable for startup failures.
func ShowError(title string, err error) error {
	if err == nil {
		return nil
	}
	if boxErr := sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, err.Error(), nil); boxErr != nil {
		return fmt.Errorf("show message box: %w", boxErr)
	}
	return nil
}
