package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hyprswitch/pkg/logger"
)

// LoadFromFile loads the configuration from a YAML file. Keys missing
// from the file keep their current values.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	// Use a temporary struct to unmarshal YAML
	var temp struct {
		HyprctlPath        *string  `yaml:"hyprctl_path"`
		Prompt             *string  `yaml:"prompt"`
		MinimizedWorkspace *string  `yaml:"minimized_workspace"`
		NotifyCommand      *string  `yaml:"notify_command"`
		LogFile            *string  `yaml:"log_file"`
		RofiArgs           []string `yaml:"rofi_args"`
	}
	if err := yaml.Unmarshal(data, &temp); err != nil {
		log.Error("Failed to parse config YAML", err, "path", path)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Assign to private fields
	assign(&c.hyprctlPath, temp.HyprctlPath)
	assign(&c.prompt, temp.Prompt)
	assign(&c.minimizedWorkspace, temp.MinimizedWorkspace)
	assign(&c.notifyCommand, temp.NotifyCommand)
	assign(&c.logFile, temp.LogFile)
	if temp.RofiArgs != nil {
		c.rofiArgs = temp.RofiArgs
	}

	return c.validate()
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// validate rejects settings the switcher cannot work without.
func (c *Config) validate() error {
	var errs []error
	if c.hyprctlPath == "" {
		errs = append(errs, errors.New("hyprctl_path must not be empty"))
	}
	if c.prompt == "" {
		errs = append(errs, errors.New("prompt must not be empty"))
	}
	if c.minimizedWorkspace == "" {
		errs = append(errs, errors.New("minimized_workspace must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadConfigFromPath loads the configuration on top of the defaults.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := DefaultConfig(log)
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
