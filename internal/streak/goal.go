package streak

import "github.com/alexanderramin/streax/internal/domain"

const (
	// DailyBacklogSaverGrant is credited on every tracked day that follows
	// another tracked day.
	DailyBacklogSaverGrant = 15

	// MaxBacklogSavers caps the backlog-saver balance (30 days of grants).
	MaxBacklogSavers = 450
)

// CalculateDailyGoal ratchets the goal up to yesterday's output but never
// below the profile's baseline commitment.
func CalculateDailyGoal(yesterday *domain.DailyLog, commitment int) int {
	if yesterday == nil {
		return commitment
	}
	return max(yesterday.ProductiveMinutes, commitment)
}

// CalculateBacklog carries yesterday's backlog forward and adds whatever
// part of yesterday's goal was missed.
func CalculateBacklog(yesterday *domain.DailyLog) int {
	if yesterday == nil {
		return 0
	}
	return yesterday.BacklogMinutes + yesterday.Deficit()
}

// NewDailyLog builds the log for date from the previous calendar day's log.
// A nil yesterday means the first tracked day (or a gap in tracking): goal
// falls back to the baseline, backlog starts at zero and no saver is granted.
func NewDailyLog(date string, yesterday *domain.DailyLog, commitment int, ledger *domain.StreakData) *domain.DailyLog {
	log := &domain.DailyLog{
		Date:           date,
		GoalMinutes:    CalculateDailyGoal(yesterday, commitment),
		BacklogMinutes: CalculateBacklog(yesterday),
		Sessions:       []domain.PomodoroSession{},
	}
	if yesterday != nil {
		creditBacklogSavers(ledger, DailyBacklogSaverGrant)
		log.BacklogSaversEarned = DailyBacklogSaverGrant
	}
	return log
}

// creditBacklogSavers adds minutes to the balance, truncating at
// MaxBacklogSavers. It returns the minutes actually credited.
func creditBacklogSavers(ledger *domain.StreakData, minutes int) int {
	before := ledger.BacklogSavers
	ledger.BacklogSavers = min(before+minutes, MaxBacklogSavers)
	return ledger.BacklogSavers - before
}
