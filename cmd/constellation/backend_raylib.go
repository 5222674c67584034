//go:build !ebiten

package main

import (
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/gui"
)

const windowBackend = config.BackendRaylib

func openWindow(cfg *config.Config, log *zap.Logger) error {
	return gui.Run(cfg, log)
}
