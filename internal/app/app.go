package app

import (
	"errors"
	"fmt"
	"io"

	"hyprswitch/internal/display"
	"hyprswitch/internal/hyprctl"
	"hyprswitch/internal/models"
	"hyprswitch/internal/wm"
	"hyprswitch/pkg/config"
	"hyprswitch/pkg/logger"
	"hyprswitch/pkg/notify"
)

// HyprSwitch ties a hyprctl snapshot to the launcher and the window
// manager actions. One instance serves one invocation.
type HyprSwitch struct {
	hypr     hyprctl.Executor
	wm       *wm.Manager
	rofi     *display.RofiManager
	notifier *notify.NotifyService
	log      *logger.Logger
	out      io.Writer
}

func NewHyprSwitch(cfg *config.Config, hypr hyprctl.Executor, out io.Writer, log *logger.Logger) *HyprSwitch {
	return &HyprSwitch{
		hypr:     hypr,
		wm:       wm.NewManager(hypr, cfg.GetMinimizedWorkspace(), log),
		rofi:     display.NewRofiManager(cfg.GetPrompt(), cfg.GetRofiArgs(), log),
		notifier: notify.NewNotifyService(cfg.GetNotifyCommand(), log),
		log:      log,
		out:      out,
	}
}

// Run is the rofi script-mode entry point: without arguments it prints
// the window list, with one argument it activates the window whose label
// matches. Any other argument count does nothing.
func (h *HyprSwitch) Run(args []string) error {
	windows, err := h.snapshot()
	if err != nil {
		return err
	}

	switch len(args) {
	case 0:
		h.log.Debug("Listing windows", "count", len(windows))
		return h.rofi.WriteList(h.out, windows)
	case 1:
		return h.Select(windows, args[0])
	default:
		h.log.Debug("Ignoring invocation", "arg_count", len(args))
		return nil
	}
}

// Menu shows rofi in dmenu mode and activates the chosen window.
func (h *HyprSwitch) Menu() error {
	windows, err := h.snapshot()
	if err != nil {
		return err
	}

	selection, ok, err := h.rofi.ShowMenu(windows)
	if err != nil {
		h.report("Failed to show window menu", err)
		return err
	}
	if !ok {
		return nil
	}
	return h.Select(windows, selection)
}

// Select activates the window labelled selection. An unknown label is
// not an error, the list may have changed since it was shown.
func (h *HyprSwitch) Select(windows []models.Window, selection string) error {
	target, ok := display.Resolve(windows, selection)
	if !ok {
		h.log.Warn("No window matches selection", "selection", selection)
		return nil
	}

	if err := h.wm.Activate(windows, target); err != nil {
		h.report(fmt.Sprintf("Failed to switch to %s", target.Class), err)
		return fmt.Errorf("failed to activate window %d: %w", target.PID, err)
	}
	return nil
}

// snapshot reads all windows. Only a missing hyprctl is fatal; any other
// failure yields an empty list.
func (h *HyprSwitch) snapshot() ([]models.Window, error) {
	windows, err := hyprctl.Clients(h.hypr)
	if err != nil {
		if errors.Is(err, hyprctl.ErrToolUnavailable) {
			return nil, err
		}
		h.log.Warn("Failed to list clients", "error", err.Error())
		return nil, nil
	}
	return windows, nil
}

func (h *HyprSwitch) report(message string, err error) {
	h.log.Error(message, err)
	if nerr := h.notifier.Show(fmt.Sprintf("%s: %v", message, err)); nerr != nil {
		h.log.Debug("Could not notify", "error", nerr.Error())
	}
}
