package timer

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid timer transition")
	ErrEmptyTask         = errors.New("task name is required")
	ErrUnknownPreset     = errors.New("unknown preset")
)
