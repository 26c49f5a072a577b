package notify

import (
	"fmt"
	"os/exec"

	"hyprswitch/pkg/logger"
)

const (
	title = "hyprswitch"
	// errorType is passed to the notify command ahead of the message.
	errorType = "ERROR"
)

// NotifyService reports action results on the desktop. The launcher hides
// stderr, so this is the only place a failure becomes visible.
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
	tools         []notificationTool
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		tools:         notificationTools,
	}
}

// Show displays an error notification. It tries the configured command
// first, then the known desktop tools.
func (n *NotifyService) Show(message string) error {
	if n.notifyCommand != "" {
		err := n.executeNotifyCommand(message)
		if err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand, "error", err.Error())
	}

	if err := n.trySystemNotification(title, message); err != nil {
		n.log.Warn("Notification not delivered", "message", message)
		return err
	}
	return nil
}

// executeNotifyCommand runs the configured command with "ERROR" and the
// message as its two arguments.
func (n *NotifyService) executeNotifyCommand(message string) error {
	n.log.Debug("Executing notify command", "command", n.notifyCommand)

	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$1" "$2"`, "sh", errorType, message)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("notify command failed: %w: %s", err, output)
	}
	return nil
}
