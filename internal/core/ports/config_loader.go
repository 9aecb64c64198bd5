package ports

import "go.trai.ch/bubbles/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings for the given working directory. When no config
	// file is found it returns the defaults.
	Load(cwd string) (domain.Settings, error)

	// DiscoverConfigPath walks up from cwd and returns the config file path,
	// or an empty string if there is none.
	DiscoverConfigPath(cwd string) (string, error)
}
