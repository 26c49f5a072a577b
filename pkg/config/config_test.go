package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"hyprswitch/pkg/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig(logger.Nop())
	if c.GetHyprctlPath() != "hyprctl" {
		t.Errorf("expected hyprctl, got %q", c.GetHyprctlPath())
	}
	if c.GetPrompt() != "Windows" {
		t.Errorf("expected Windows, got %q", c.GetPrompt())
	}
	if c.GetMinimizedWorkspace() != "special:minimized" {
		t.Errorf("expected special:minimized, got %q", c.GetMinimizedWorkspace())
	}
	if c.GetNotifyCommand() != "" || c.GetLogFile() != "" || len(c.GetRofiArgs()) != 0 {
		t.Errorf("expected empty optional settings, got %+v", c)
	}
}

func TestFindConfig_ProvidedPath(t *testing.T) {
	path := writeConfig(t, `
prompt: Switch
minimized_workspace: special:hidden
notify_command: my-notify
rofi_args: ["-i", "-theme", "windows"]
`)

	c, err := FindConfig(path, logger.Nop())
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if c.GetPrompt() != "Switch" {
		t.Errorf("expected prompt Switch, got %q", c.GetPrompt())
	}
	if c.GetMinimizedWorkspace() != "special:hidden" {
		t.Errorf("unexpected minimized workspace %q", c.GetMinimizedWorkspace())
	}
	if c.GetNotifyCommand() != "my-notify" {
		t.Errorf("unexpected notify command %q", c.GetNotifyCommand())
	}
	if got := strings.Join(c.GetRofiArgs(), " "); got != "-i -theme windows" {
		t.Errorf("unexpected rofi args %q", got)
	}
	// unset keys keep their defaults
	if c.GetHyprctlPath() != "hyprctl" {
		t.Errorf("expected default hyprctl path, got %q", c.GetHyprctlPath())
	}
}

func TestFindConfig_MissingProvidedPath(t *testing.T) {
	_, err := FindConfig(filepath.Join(t.TempDir(), "missing.yaml"), logger.Nop())
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

// isolateXDG points the XDG config lookup at empty temp dirs and returns
// the config home.
func isolateXDG(t *testing.T) string {
	t.Helper()
	// registered first so it runs after the env is restored
	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	return home
}

func TestFindConfig_SearchFindsUserFile(t *testing.T) {
	home := isolateXDG(t)
	dir := filepath.Join(home, "hyprswitch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("prompt: Found\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := FindConfig("", logger.Nop())
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if c.GetPrompt() != "Found" {
		t.Errorf("expected prompt from user file, got %q", c.GetPrompt())
	}
}

func TestFindConfig_SearchFallsBackToDefaults(t *testing.T) {
	isolateXDG(t)

	c, err := FindConfig("", logger.Nop())
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if c.GetPrompt() != "Windows" {
		t.Errorf("expected defaults, got prompt %q", c.GetPrompt())
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty prompt", `prompt: ""`, "prompt must not be empty"},
		{"empty hyprctl", `hyprctl_path: ""`, "hyprctl_path must not be empty"},
		{"empty minimized", `minimized_workspace: ""`, "minimized_workspace must not be empty"},
		{"bad yaml", "prompt: [unterminated", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig(logger.Nop())
			err := c.LoadFromFile(writeConfig(t, tt.content), logger.Nop())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	c := DefaultConfig(logger.Nop())
	c.logFile = "/tmp/custom.log"
	if p, err := c.LogPath(); err != nil || p != "/tmp/custom.log" {
		t.Errorf("expected configured path, got %q, %v", p, err)
	}
}

func TestGetRofiArgsReturnsCopy(t *testing.T) {
	c := DefaultConfig(logger.Nop())
	c.rofiArgs = []string{"-i"}
	args := c.GetRofiArgs()
	args[0] = "changed"
	if c.GetRofiArgs()[0] != "-i" {
		t.Error("GetRofiArgs exposed internal slice")
	}
}
