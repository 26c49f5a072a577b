package notify

import (
	"fmt"
	"os/exec"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string) *exec.Cmd {
			return exec.Command(tool, "-a", title, "-u", "critical", title, message)
		},
	},
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string) *exec.Cmd {
			return exec.Command(tool, "-a", title, "-u", "critical", "-t", "5000", title, message)
		},
	},
}

func (n *NotifyService) trySystemNotification(title string, message string) error {
	for _, tool := range n.tools {
		path, err := exec.LookPath(tool.name)
		if err != nil {
			continue
		}
		cmd := tool.buildCommand(path, title, message)
		if err := cmd.Run(); err == nil {
			n.log.Debug("Notification sent successfully", "tool", tool.name)
			return nil
		}
	}
	return fmt.Errorf("no notification tools available")
}
