package hyprctl

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"hyprswitch/internal/models"
)

const (
	recordSeparator = "\n\n"
	recordHeader    = "Window "
	fieldSeparator  = ": "
)

// fieldSetters maps a hyprctl field name to the update it applies.
// Keys missing from the map are ignored.
var fieldSetters = map[string]func(w *models.Window, value string){
	"monitor": func(w *models.Window, value string) { w.Monitor = parseInt(value) },
	"class":   func(w *models.Window, value string) { w.Class = value },
	"title":   func(w *models.Window, value string) { w.Title = value },
	"workspace": func(w *models.Window, value string) {
		w.Workspace = parseWorkspace(value)
	},
	"pid": func(w *models.Window, value string) { w.PID = parseInt(value) },
	"fullscreen": func(w *models.Window, value string) {
		mode, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			mode = 0
		}
		w.Fullscreen = int(mode)
	},
}

// ParseClients converts the plain text dump of `hyprctl clients` (or
// `hyprctl activewindow`) into windows, one per blank line separated
// record, in input order. Bad numeric fields become zero instead of
// dropping the record.
func ParseClients(raw string) []models.Window {
	records := strings.Split(raw, recordSeparator)
	if last := len(records) - 1; strings.TrimSpace(records[last]) == "" {
		records = records[:last]
	}

	return lo.Map(records, func(record string, _ int) models.Window {
		return parseRecord(record)
	})
}

func parseRecord(record string) models.Window {
	var win models.Window
	for _, line := range strings.Split(record, "\n") {
		if strings.HasPrefix(line, recordHeader) {
			continue
		}
		key, value, ok := strings.Cut(strings.TrimSpace(line), fieldSeparator)
		if !ok {
			continue
		}
		if set, known := fieldSetters[key]; known {
			set(&win, value)
		}
	}
	return win
}

// parseWorkspace splits "<id> <name>" on the first space.
func parseWorkspace(value string) models.Workspace {
	id, name, ok := strings.Cut(value, " ")
	if !ok {
		return models.Workspace{ID: parseInt(value)}
	}
	return models.Workspace{ID: parseInt(id), Name: name}
}

// ParseActiveWindow returns the focused window from `hyprctl activewindow`.
// hyprctl prints "Invalid" when nothing is focused.
func ParseActiveWindow(raw string) (models.Window, bool) {
	windows := ParseClients(raw)
	if len(windows) == 0 || !windows[0].Valid() {
		return models.Window{}, false
	}
	return windows[0], true
}

// ParseActiveWorkspace reads the first line of `hyprctl activeworkspace`,
// e.g. "workspace ID 3 (dev) on monitor DP-1:".
func ParseActiveWorkspace(raw string) (models.ActiveWorkspace, bool) {
	line, _, _ := strings.Cut(raw, "\n")
	head, _, ok := strings.Cut(line, " on ")
	if !ok {
		return models.ActiveWorkspace{}, false
	}
	rest, ok := strings.CutPrefix(head, "workspace ID ")
	if !ok {
		return models.ActiveWorkspace{}, false
	}
	id, name, ok := strings.Cut(rest, " ")
	if !ok {
		return models.ActiveWorkspace{}, false
	}
	return models.ActiveWorkspace{
		ID:   parseInt(id),
		Name: strings.Trim(name, "()"),
	}, true
}

func parseInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
