package cmd

import (
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/sitebuild"
)

// AppConfig holds all the shared configuration and dependencies
type AppConfig struct {
	Logger    logger.Logger
	Commander sitebuild.Commander
}

// NewAppConfig creates a new configuration instance
func NewAppConfig(logger logger.Logger) *AppConfig {
	return &AppConfig{
		Logger:    logger,
		Commander: sitebuild.NewReal(),
	}
}
