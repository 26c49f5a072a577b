package display

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"hyprswitch/internal/models"
	"hyprswitch/pkg/logger"
)

// rofi exits with 1 when the user dismisses the menu.
const rofiCancelled = 1

type RofiManager struct {
	path   string
	prompt string
	args   []string
	log    *logger.Logger
}

func NewRofiManager(prompt string, extraArgs []string, log *logger.Logger) *RofiManager {
	return &RofiManager{
		path:   "rofi",
		prompt: prompt,
		args:   extraArgs,
		log:    log,
	}
}

// WriteList prints the rofi script-mode listing: the prompt control line
// followed by one label per window.
func (r *RofiManager) WriteList(w io.Writer, windows []models.Window) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\x00prompt\x1f%s\n", r.prompt)
	for _, label := range Labels(windows) {
		b.WriteString(label)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write window list: %w", err)
	}
	return nil
}

// ShowMenu runs rofi in dmenu mode with the window labels and returns the
// chosen line. ok is false when the menu was dismissed.
func (r *RofiManager) ShowMenu(windows []models.Window) (selection string, ok bool, err error) {
	path, err := exec.LookPath(r.path)
	if err != nil {
		return "", false, fmt.Errorf("rofi not found: %w", err)
	}

	labels := Labels(windows)
	args := append([]string{"-dmenu", "-p", r.prompt}, r.args...)
	r.log.Debug("Showing rofi menu", "path", path, "entries", len(labels))

	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader(strings.Join(labels, "\n"))

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == rofiCancelled {
			r.log.Debug("rofi menu dismissed")
			return "", false, nil
		}
		return "", false, fmt.Errorf("rofi failed: %w", err)
	}

	selection = strings.TrimRight(string(output), "\n")
	if selection == "" {
		return "", false, nil
	}
	return selection, true, nil
}
