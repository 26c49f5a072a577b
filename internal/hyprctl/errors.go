package hyprctl

import "errors"

var (
	// ErrToolUnavailable means hyprctl could not be started at all.
	ErrToolUnavailable = errors.New("hyprctl unavailable")
	// ErrMalformedOutput means hyprctl printed something that is not text.
	ErrMalformedOutput = errors.New("hyprctl output is not valid UTF-8")
	// ErrCommandFailed means hyprctl ran but rejected the request.
	ErrCommandFailed = errors.New("hyprctl command failed")
)
