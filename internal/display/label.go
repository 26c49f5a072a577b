package display

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"hyprswitch/internal/models"
)

// Label renders the menu line for a window:
//
//	"<monitor>: <class>, Workspace: <name>"
//	"<monitor>: <class> >> <title>, Workspace: <name>"
//
// The second form is used when title and class differ. Windows without a
// class have no label. The line is matched back by exact equality, so the
// format must stay stable.
func Label(w models.Window) (string, bool) {
	if !w.Valid() {
		return "", false
	}

	name := w.Class
	if w.Class != w.Title {
		name += " >> " + w.Title
	}
	return fmt.Sprintf("%d: %s, Workspace: %s", w.Monitor, name, strings.Trim(w.Workspace.Name, "()")), true
}

// Labels returns the labels of every labelled window, in snapshot order.
func Labels(windows []models.Window) []string {
	return lo.FilterMap(windows, func(w models.Window, _ int) (string, bool) {
		return Label(w)
	})
}

// Resolve returns the first window whose label equals selection.
func Resolve(windows []models.Window, selection string) (models.Window, bool) {
	return lo.Find(windows, func(w models.Window) bool {
		label, ok := Label(w)
		return ok && label == selection
	})
}
