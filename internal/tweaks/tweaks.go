// Package tweaks binds a cube controller to a controls folder.
package tweaks

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cube-tweaks/internal/config"
	"github.com/Faultbox/cube-tweaks/internal/controls"
	"github.com/Faultbox/cube-tweaks/internal/cube"
	"github.com/Faultbox/cube-tweaks/internal/logger"
	"github.com/Faultbox/cube-tweaks/internal/tween"
)

// FolderName is the title of the folder Register fills.
const FolderName = "Cube Tweaks"

// Debug holds the panel-side values that are not read straight from the
// controller. Subdivision only reaches the controller on commit.
type Debug struct {
	Subdivision int
	Color       [3]float32
}

// Options converts the cube config section into controller options.
func Options(cfg config.CubeConfig) (cube.Options, error) {
	opts := cube.DefaultOptions()

	rgb, err := config.ParseColor(cfg.Color)
	if err != nil {
		return opts, fmt.Errorf("cube color: %w", err)
	}
	ease, ok := tween.ByName(cfg.SnapEasing)
	if !ok {
		return opts, fmt.Errorf("unknown snap easing %q", cfg.SnapEasing)
	}

	opts.Subdivision = cfg.Subdivision
	opts.Color = rgb
	opts.Wireframe = cfg.Wireframe
	opts.SpinStep = cfg.SpinStep
	opts.SnapDuration = cfg.SnapDuration
	opts.SnapEasing = ease
	opts.Mode = cube.MaterialFlat
	if cfg.Material == config.MaterialTextured {
		opts.Mode = cube.MaterialTextured
	}
	return opts, nil
}

// Register adds the cube controls to folder and returns the debug state they
// edit. The color picker is only added for flat materials, since textured
// cubes render the texture untinted.
func Register(folder *controls.Folder, c *cube.Controller, cfg config.CubeConfig) *Debug {
	log := logger.Named("tweaks")
	state := c.State()
	d := &Debug{
		Subdivision: state.Subdivision,
		Color:       state.Color,
	}

	folder.AddNumber("y",
		func() float64 { return c.State().Position[1] },
		c.SetElevation,
	).Min(cfg.ElevationMin).Max(cfg.ElevationMax).Step(cfg.ElevationStep).Name("Elevation")

	folder.AddBool("visible", c.Visible, c.SetVisible)

	folder.AddBool("wireframe",
		func() bool { return c.Material().Wireframe },
		c.SetWireframe,
	)

	if cfg.Material != config.MaterialTextured {
		folder.AddColor("color",
			func() [3]float32 { return d.Color },
			func(rgb [3]float32) { d.Color = rgb },
		).OnChange(c.SetColor)
	}

	folder.AddInt("subdivision",
		func() int { return d.Subdivision },
		func(v int) { d.Subdivision = v },
	).Min(cfg.SubdivisionMin).Max(cfg.SubdivisionMax).Step(1).
		OnFinishChange(func(level int) {
			log.Info("subdivision committed", zap.Int("level", level))
			c.Rebuild(level)
		})

	folder.AddAction("rotateX", func() { c.SnapRotate(cube.AxisX) })
	folder.AddAction("rotateY", func() { c.SnapRotate(cube.AxisY) })
	folder.AddAction("rotateZ", func() { c.SnapRotate(cube.AxisZ) })

	return d
}

// Store copies the tweakable values back into cfg for saving.
func Store(cfg *config.CubeConfig, c *cube.Controller, d *Debug) {
	state := c.State()
	cfg.Subdivision = state.Subdivision
	cfg.Wireframe = state.Wireframe
	cfg.Color = config.FormatColor(d.Color)
}
