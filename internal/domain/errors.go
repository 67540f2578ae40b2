package domain

import "errors"

var (
	ErrInvalidRecording  = errors.New("invalid recording")
	ErrInvalidSpeed      = errors.New("playback speed must be positive")
	ErrOwnershipConflict = errors.New("event type ownership violation")
	ErrRecordingNotFound = errors.New("recording not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionRunning    = errors.New("session already running")
	ErrUnknownEventType  = errors.New("unknown event type")
	ErrUnknownGitHook    = errors.New("unknown git hook")
	ErrUnsupportedSchema = errors.New("unsupported recording schema version")
)
