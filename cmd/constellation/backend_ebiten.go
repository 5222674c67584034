//go:build ebiten

package main

import (
	"go.uber.org/zap"

	"github.com/san-kum/constellation/internal/config"
	"github.com/san-kum/constellation/internal/window"
)

const windowBackend = config.BackendEbiten

func openWindow(cfg *config.Config, log *zap.Logger) error {
	return window.Run(cfg, log)
}
