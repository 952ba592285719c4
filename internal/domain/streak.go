package domain

// StreakData is the ledger shared by every day of an AppData document.
type StreakData struct {
	CurrentStreak         int    `json:"currentStreak" validate:"gte=0"`
	LongestStreak         int    `json:"longestStreak" validate:"gte=0,gtefield=CurrentStreak"`
	TotalDays             int    `json:"totalDays" validate:"gte=0"`
	StreakSavers          int    `json:"streakSavers" validate:"gte=0"`
	BacklogSavers         int    `json:"backlogSavers" validate:"gte=0,lte=450"`
	LastStreakSaverEarned string `json:"lastStreakSaverEarned,omitempty"`
}
