// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/cube-tweaks/internal/tween"
)

// Variant names.
const (
	VariantClassic  = "classic"
	VariantExtended = "extended"
)

// Material modes.
const (
	MaterialFlat     = "flat"
	MaterialTextured = "textured"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Cube       CubeConfig       `yaml:"cube"`
	Logging    LoggingConfig    `yaml:"logging"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// GraphicsConfig holds display, camera and rendering settings.
type GraphicsConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	VSync          bool    `yaml:"vsync"`
	FOV            float32 `yaml:"fov"` // Vertical field of view in degrees
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	CameraDistance float32 `yaml:"camera_distance"`
	Damping        float32 `yaml:"damping"` // Orbit damping factor, 0 disables
}

// CubeConfig holds the tunable cube defaults and the control bounds.
type CubeConfig struct {
	Variant        string  `yaml:"variant"`
	Subdivision    int     `yaml:"subdivision"`
	SubdivisionMin int     `yaml:"subdivision_min"`
	SubdivisionMax int     `yaml:"subdivision_max"`
	Color          string  `yaml:"color"`
	Wireframe      bool    `yaml:"wireframe"`
	Material       string  `yaml:"material"`
	Texture        string  `yaml:"texture"`
	ElevationMin   float64 `yaml:"elevation_min"`
	ElevationMax   float64 `yaml:"elevation_max"`
	ElevationStep  float64 `yaml:"elevation_step"`

	SpinStep     float64       `yaml:"spin_step"` // Radians added to X and Y every frame
	SnapDuration time.Duration `yaml:"snap_duration"`
	SnapEasing   string        `yaml:"snap_easing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds F12 capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with the classic variant defaults.
func Default() *Config {
	cfg, _ := ForVariant(VariantClassic)
	return cfg
}

// ForVariant returns defaults for the named demo variant.
//
// classic: subdivision 1-9 starting at 3, base color texture.
// extended: subdivision 1-20 starting at 2, flat color.
func ForVariant(name string) (*Config, error) {
	cfg := &Config{
		Graphics: GraphicsConfig{
			Width:          1280,
			Height:         720,
			VSync:          true,
			FOV:            75,
			Near:           0.1,
			Far:            1000,
			CameraDistance: 3,
			Damping:        0.05,
		},
		Cube: CubeConfig{
			Variant:        VariantClassic,
			Subdivision:    3,
			SubdivisionMin: 1,
			SubdivisionMax: 9,
			Color:          "#88ff00",
			Wireframe:      true,
			Material:       MaterialTextured,
			Texture:        "textures/door/basecolor.jpg",
			ElevationMin:   -3,
			ElevationMax:   3,
			ElevationStep:  0.1,
			SpinStep:       0.01,
			SnapDuration:   500 * time.Millisecond,
			SnapEasing:     "power1.out",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "cube",
		},
	}

	switch name {
	case VariantClassic, "":
	case VariantExtended:
		cfg.Cube.Variant = VariantExtended
		cfg.Cube.Subdivision = 2
		cfg.Cube.SubdivisionMax = 20
		cfg.Cube.Material = MaterialFlat
		cfg.Cube.Texture = ""
	default:
		return nil, fmt.Errorf("unknown variant %q", name)
	}

	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	cube := c.Cube

	if cube.SubdivisionMin < 1 {
		return fmt.Errorf("cube.subdivision_min must be at least 1, got %d", cube.SubdivisionMin)
	}
	if cube.SubdivisionMax < cube.SubdivisionMin {
		return fmt.Errorf("cube.subdivision_max %d is below subdivision_min %d", cube.SubdivisionMax, cube.SubdivisionMin)
	}
	if cube.Subdivision < cube.SubdivisionMin || cube.Subdivision > cube.SubdivisionMax {
		return fmt.Errorf("cube.subdivision %d outside [%d, %d]", cube.Subdivision, cube.SubdivisionMin, cube.SubdivisionMax)
	}
	if cube.ElevationMax < cube.ElevationMin {
		return fmt.Errorf("cube.elevation_max %g is below elevation_min %g", cube.ElevationMax, cube.ElevationMin)
	}
	if cube.ElevationStep <= 0 {
		return fmt.Errorf("cube.elevation_step must be positive, got %g", cube.ElevationStep)
	}
	if cube.Material != MaterialFlat && cube.Material != MaterialTextured {
		return fmt.Errorf("cube.material must be %q or %q, got %q", MaterialFlat, MaterialTextured, cube.Material)
	}
	if _, err := ParseColor(cube.Color); err != nil {
		return fmt.Errorf("cube.color: %w", err)
	}
	if cube.SnapDuration < 0 {
		return fmt.Errorf("cube.snap_duration must not be negative, got %v", cube.SnapDuration)
	}
	if _, ok := tween.ByName(cube.SnapEasing); !ok {
		return fmt.Errorf("cube.snap_easing: unknown easing %q", cube.SnapEasing)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("graphics.fov must be in (0, 180), got %g", c.Graphics.FOV)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("graphics.near/far invalid: %g/%g", c.Graphics.Near, c.Graphics.Far)
	}

	return nil
}
