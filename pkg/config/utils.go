package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"hyprswitch/pkg/logger"
)

// FindConfig locates and loads the configuration. An explicit path must
// exist. Otherwise the XDG config directories are searched and the
// defaults are used when no file is found.
func FindConfig(providedPath string, log *logger.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	path, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName))
	if err != nil {
		log.Debug("No config file found, using defaults")
		return DefaultConfig(log), nil
	}

	config, err := loadConfigFromPath(path, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	log.Info("Configuration loaded", "path", path)
	return config, nil
}
