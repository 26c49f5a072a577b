package hyprctl

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"hyprswitch/pkg/logger"
)

// Executor runs one hyprctl request and returns its textual reply.
type Executor interface {
	Run(args ...string) (string, error)
}

// Client runs the hyprctl binary, one process per request.
type Client struct {
	path string
	log  *logger.Logger
}

func NewClient(name string, log *logger.Logger) (*Client, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		log.Error("hyprctl not found in PATH", err, "name", name)
		return nil, fmt.Errorf("%w: %w", ErrToolUnavailable, err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Client{path: path, log: log}, nil
}

func (c *Client) Run(args ...string) (string, error) {
	request := strings.Join(args, " ")
	c.log.Debug("Running hyprctl", "args", request)

	var stderr bytes.Buffer
	cmd := exec.Command(c.path, args...)
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			c.log.Error("hyprctl exited with error", err,
				"args", request,
				"stderr", stderr.String())
			return "", fmt.Errorf("%w: hyprctl %s: exit code %d: %s",
				ErrCommandFailed, request, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		c.log.Error("Failed to execute hyprctl", err, "args", request)
		return "", fmt.Errorf("%w: %w", ErrToolUnavailable, err)
	}

	if !utf8.Valid(output) {
		c.log.Error("hyprctl returned non-text output", nil, "args", request, "size_bytes", len(output))
		return "", fmt.Errorf("%w: hyprctl %s", ErrMalformedOutput, request)
	}

	return string(output), nil
}
