package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"hyprswitch/pkg/logger"
)

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) *Config {
	return &Config{
		hyprctlPath:        "hyprctl",
		prompt:             "Windows",
		minimizedWorkspace: "special:minimized",
		log:                log,
	}
}

// DefaultLogPath returns the log file under the XDG state directory,
// creating the directory if needed.
func DefaultLogPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join(appName, logFileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve log path: %w", err)
	}
	return path, nil
}

// LogPath returns the configured log file or the default one.
func (c *Config) LogPath() (string, error) {
	if logFile := c.GetLogFile(); logFile != "" {
		return logFile, nil
	}
	path, err := DefaultLogPath()
	if err != nil {
		return "", err
	}
	c.log.Debug("Using default log path", "path", path)
	return path, nil
}
