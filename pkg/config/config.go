package config

import "hyprswitch/pkg/logger"

const (
	appName        = "hyprswitch"
	configFileName = "config.yaml"
	logFileName    = "hyprswitch.log"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via YAML file (private fields to enforce immutability)
	hyprctlPath        string
	prompt             string
	minimizedWorkspace string
	notifyCommand      string
	logFile            string
	rofiArgs           []string

	// Internal fields
	log *logger.Logger
}

// GetHyprctlPath returns the name or path of the hyprctl binary.
func (c *Config) GetHyprctlPath() string {
	return c.hyprctlPath
}

// GetPrompt returns the launcher prompt text.
func (c *Config) GetPrompt() string {
	return c.prompt
}

// GetMinimizedWorkspace returns the bare name of the special workspace
// that holds minimized windows.
func (c *Config) GetMinimizedWorkspace() string {
	return c.minimizedWorkspace
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// GetLogFile returns the configured log file, empty for the default.
func (c *Config) GetLogFile() string {
	return c.logFile
}

// GetRofiArgs returns a copy of the extra rofi arguments for menu mode.
func (c *Config) GetRofiArgs() []string {
	return append([]string{}, c.rofiArgs...)
}
