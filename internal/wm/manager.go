package wm

import (
	"errors"

	"github.com/samber/lo"

	"hyprswitch/internal/hyprctl"
	"hyprswitch/internal/models"
	"hyprswitch/pkg/logger"
)

// Manager moves focus to a chosen window through hyprctl dispatchers.
type Manager struct {
	hypr      hyprctl.Executor
	minimized string
	log       *logger.Logger
}

// NewManager creates a manager. minimizedWorkspace is the bare name of
// the special workspace minimized windows live on, e.g.
// "special:minimized".
func NewManager(hypr hyprctl.Executor, minimizedWorkspace string, log *logger.Logger) *Manager {
	return &Manager{
		hypr:      hypr,
		minimized: minimizedWorkspace,
		log:       log,
	}
}

// Activate brings target to the user: minimized windows are restored to
// the current workspace, everything else is focused in place.
func (m *Manager) Activate(windows []models.Window, target models.Window) error {
	if target.OnWorkspace(m.minimized) {
		m.log.Info("Restoring minimized window", "pid", target.PID, "class", target.Class)
		return m.Unminimize(target.PID)
	}
	m.log.Info("Focusing window", "pid", target.PID, "class", target.Class, "workspace", target.Workspace.Name)
	return m.Focus(windows, target.PID, target.Workspace.Name)
}

// Focus focuses the window owned by pid. A fullscreen window on the same
// workspace would stay on top, so it is focused and taken out of
// fullscreen first. Workspaces are compared by display name.
func (m *Manager) Focus(windows []models.Window, pid int, workspace string) error {
	blocker, found := lo.Find(windows, func(w models.Window) bool {
		return w.Valid() && w.IsFullscreen() && w.Workspace.Name == workspace
	})
	if found {
		m.log.Debug("Leaving fullscreen on target workspace",
			"blocker_pid", blocker.PID,
			"workspace", workspace)
		if err := m.dispatch("focus fullscreen window", "focuswindow", hyprctl.PIDSelector(blocker.PID)); err != nil {
			return err
		}
		if err := m.dispatch("exit fullscreen", "fullscreen"); err != nil {
			return err
		}
	}

	return m.dispatch("focus window", "focuswindow", hyprctl.PIDSelector(pid))
}

// Unminimize moves the window owned by pid from the minimized workspace
// onto the workspace of the active window, or onto the active workspace
// when nothing is focused.
func (m *Manager) Unminimize(pid int) error {
	active, hasActive, err := m.activeWindow()
	if err != nil {
		return err
	}

	var destination string
	if hasActive {
		destination = active.Workspace.Destination()
		if active.IsFullscreen() {
			// best effort, the move is still worth attempting
			if err := m.dispatch("exit fullscreen", "fullscreen"); err != nil {
				m.log.Warn("Could not leave fullscreen before restoring", "error", err.Error(), "active_pid", active.PID)
			}
		}
	} else {
		ws, ok, err := m.activeWorkspace()
		if err != nil {
			return err
		}
		if !ok {
			m.log.Error("No destination for minimized window", ErrLookupMiss, "pid", pid)
			return ErrLookupMiss
		}
		destination = ws.Destination()
	}

	m.log.Debug("Restoring to workspace", "pid", pid, "destination", destination)
	return m.dispatch("move to workspace", "movetoworkspace", destination+","+hyprctl.PIDSelector(pid))
}

// activeWindow treats any query failure other than a missing hyprctl as
// "no active window" so the workspace fallback still runs.
func (m *Manager) activeWindow() (models.Window, bool, error) {
	win, ok, err := hyprctl.ActiveWindow(m.hypr)
	if err != nil {
		if errors.Is(err, hyprctl.ErrToolUnavailable) {
			return models.Window{}, false, err
		}
		m.log.Warn("Failed to query active window", "error", err.Error())
		return models.Window{}, false, nil
	}
	return win, ok, nil
}

func (m *Manager) activeWorkspace() (models.ActiveWorkspace, bool, error) {
	ws, ok, err := hyprctl.ActiveWorkspace(m.hypr)
	if err != nil {
		if errors.Is(err, hyprctl.ErrToolUnavailable) {
			return models.ActiveWorkspace{}, false, err
		}
		m.log.Warn("Failed to query active workspace", "error", err.Error())
		return models.ActiveWorkspace{}, false, nil
	}
	return ws, ok, nil
}

func (m *Manager) dispatch(step, dispatcher string, args ...string) error {
	if err := hyprctl.Dispatch(m.hypr, dispatcher, args...); err != nil {
		m.log.Error("Dispatch failed", err, "step", step, "dispatcher", dispatcher)
		return &TransitionError{Step: step, Err: err}
	}
	return nil
}
