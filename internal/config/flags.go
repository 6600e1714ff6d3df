package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagVariant     = flag.String("variant", "", "Cube variant: classic or extended")
	flagSubdivision = flag.Int("subdivision", 0, "Initial subdivision level")
	flagTexture     = flag.String("texture", "", "Base color texture path (textured material)")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSubdivision > 0 {
		cfg.Cube.Subdivision = *flagSubdivision
	}
	if *flagTexture != "" {
		cfg.Cube.Texture = *flagTexture
		cfg.Cube.Material = MaterialTextured
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
