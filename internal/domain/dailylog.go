package domain

// DailyLog holds one calendar day of tracking. GoalMinutes and the initial
// BacklogMinutes are fixed when the log is created.
type DailyLog struct {
	Date                string            `json:"date" validate:"datekey"`
	ProductiveMinutes   int               `json:"productiveMinutes" validate:"gte=0"`
	GoalMinutes         int               `json:"goalMinutes" validate:"gte=0"`
	BacklogMinutes      int               `json:"backlogMinutes" validate:"gte=0"`
	Sessions            []PomodoroSession `json:"sessions" validate:"dive"`
	StreakSaverUsed     bool              `json:"streakSaverUsed"`
	BacklogSaversEarned int               `json:"backlogSaversEarned"`
	BacklogSaversUsed   int               `json:"backlogSaversUsed" validate:"gte=0"`
	FreeTimeEarned      int               `json:"freeTimeEarned"`
	FreeTimeUsed        int               `json:"freeTimeUsed" validate:"gte=0"`
	Notes               string            `json:"notes,omitempty"`

	// StreakCounted is set once the day has been added to the streak.
	StreakCounted bool `json:"streakCounted,omitempty"`
}

// Deficit is the number of minutes still missing from today's goal.
func (l *DailyLog) Deficit() int {
	if l.ProductiveMinutes >= l.GoalMinutes {
		return 0
	}
	return l.GoalMinutes - l.ProductiveMinutes
}

// FreeTimeRemaining is the earned free time not yet spent.
func (l *DailyLog) FreeTimeRemaining() int {
	if l.FreeTimeUsed >= l.FreeTimeEarned {
		return 0
	}
	return l.FreeTimeEarned - l.FreeTimeUsed
}
