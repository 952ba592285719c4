package domain

import "time"

// PomodoroSession is the record the timer hands over when a focus session
// ends. Completed is false for sessions stopped early.
type PomodoroSession struct {
	TaskName           string    `json:"taskName" validate:"required"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	DurationMinutes    int       `json:"durationMinutes" validate:"gt=0"`
	Preset             string    `json:"preset"`
	Completed          bool      `json:"completed"`
	ActualFocusMinutes *int      `json:"actualFocusTime,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}
