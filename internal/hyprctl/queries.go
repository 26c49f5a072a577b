package hyprctl

import (
	"fmt"
	"strings"

	"hyprswitch/internal/models"
)

// Clients returns every window hyprctl knows about.
func Clients(e Executor) ([]models.Window, error) {
	out, err := e.Run("clients")
	if err != nil {
		return nil, err
	}
	return ParseClients(out), nil
}

// ActiveWindow returns the focused window, if there is one.
func ActiveWindow(e Executor) (models.Window, bool, error) {
	out, err := e.Run("activewindow")
	if err != nil {
		return models.Window{}, false, err
	}
	win, ok := ParseActiveWindow(out)
	return win, ok, nil
}

// ActiveWorkspace returns the focused workspace, if it can be read.
func ActiveWorkspace(e Executor) (models.ActiveWorkspace, bool, error) {
	out, err := e.Run("activeworkspace")
	if err != nil {
		return models.ActiveWorkspace{}, false, err
	}
	ws, ok := ParseActiveWorkspace(out)
	return ws, ok, nil
}

// Dispatch runs `hyprctl dispatch <dispatcher> [args]`. hyprctl answers
// "ok" on success and a reason otherwise.
func Dispatch(e Executor, dispatcher string, args ...string) error {
	request := append([]string{"dispatch", dispatcher}, args...)
	out, err := e.Run(request...)
	if err != nil {
		return err
	}
	if reply := strings.TrimSpace(out); reply != "" && reply != "ok" {
		return fmt.Errorf("%w: %s: %s", ErrCommandFailed, strings.Join(request, " "), reply)
	}
	return nil
}

// PIDSelector builds the window selector hyprctl uses for a process id.
func PIDSelector(pid int) string {
	return fmt.Sprintf("pid:%d", pid)
}
