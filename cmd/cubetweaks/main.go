// Command cubetweaks opens a window with a subdividable spinning cube and a
// live debug panel for tweaking it.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cube-tweaks/internal/app"
	"github.com/Faultbox/cube-tweaks/internal/config"
	"github.com/Faultbox/cube-tweaks/internal/engine/window"
	"github.com/Faultbox/cube-tweaks/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		fatal(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		fatal(err)
	}
	defer logger.Sync()

	logger.Info("=== Cube Tweaks ===", window.Describe().Fields()...)
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		logger.Sync()
		fatal(err)
	}
	defer a.Close()

	a.Run()
	logger.Info("viewer closed normally")
}

func fatal(err error) {
	if boxErr := window.ShowError(app.Title, err); boxErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", boxErr)
	}
	os.Exit(1)
}
