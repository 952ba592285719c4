package app

import (
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
)

type DashboardRequest struct {
	Now *time.Time
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{}
}

// TodayView is today's progress against its goal.
type TodayView struct {
	Date              string
	ProductiveMinutes int
	GoalMinutes       int
	DeficitMinutes    int
	BacklogMinutes    int
	ProgressPct       float64
	GoalMet           bool
	StreakSaverUsed   bool
	Sessions          int
	FreeTimeEarned    int
	FreeTimeRemaining int
	// NextReward is nil once the top tier is reached.
	NextReward *streak.RewardTier
	Notes      string
}

type DashboardResponse struct {
	GeneratedAt time.Time
	Profile     domain.UserProfile
	Today       TodayView
	Streak      domain.StreakData
	// StreakAtRisk is true while an active streak waits on today's goal.
	StreakAtRisk bool
	NextMilestone streak.Milestone

	CanUseStreakSaver  bool
	CanUseBacklogSaver bool
	// MaxBacklogRedemption is the most a backlog redemption can apply now.
	MaxBacklogRedemption int

	UnreadNotifications int
}
