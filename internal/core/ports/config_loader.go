package ports

import "go.trai.ch/py2sec/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	// Returns nil, nil if the file does not exist.
	Load(path string) (*domain.ProjectConfig, error)
}
