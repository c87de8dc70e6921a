package ports

import "go.trai.ch/jig/internal/core/domain"

// ConfigLoader defines the interface for loading jig's configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project rooted at rootDir,
	// falling back to defaults when no config file exists.
	Load(rootDir string) (*domain.Config, error)
}
