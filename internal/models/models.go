package models

import (
	"strconv"
	"strings"
)

// Workspace identifies the workspace a window is on. Name is the display
// name exactly as hyprctl prints it, including the surrounding
// parentheses, e.g. "(term)" or "(special:minimized)".
type Workspace struct {
	ID   int
	Name string
}

// Window represents one client from a `hyprctl clients` snapshot.
type Window struct {
	Monitor    int
	Class      string
	Title      string
	Workspace  Workspace
	PID        int
	Fullscreen int
}

// Valid reports whether the record describes a real window. Records
// without a class are never shown or matched.
func (w Window) Valid() bool {
	return w.Class != ""
}

// IsFullscreen reports whether the window is in any fullscreen mode.
func (w Window) IsFullscreen() bool {
	return w.Fullscreen > 0
}

// Destination returns the movetoworkspace argument for this workspace.
func (ws Workspace) Destination() string {
	name := strings.TrimSuffix(strings.TrimPrefix(ws.Name, "("), ")")
	return destination(ws.ID, name)
}

// OnWorkspace reports whether the window is on the workspace with the
// given bare name, e.g. "special:minimized".
func (w Window) OnWorkspace(name string) bool {
	return w.Workspace.Name == "("+name+")"
}

// ActiveWorkspace is the focused workspace as reported by
// `hyprctl activeworkspace`. Name has its parentheses stripped.
type ActiveWorkspace struct {
	ID   int
	Name string
}

// Destination returns the workspace argument for movetoworkspace.
func (a ActiveWorkspace) Destination() string {
	return destination(a.ID, a.Name)
}

// destination prefers the numeric id. Named and special workspaces have
// ids <= 0, and hyprctl reads a leading "-" as a relative move, so those
// are addressed by name.
func destination(id int, name string) string {
	switch {
	case id > 0:
		return strconv.Itoa(id)
	case strings.HasPrefix(name, "special:"):
		return name
	default:
		return "name:" + name
	}
}
