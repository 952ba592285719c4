package streak

import "github.com/alexanderramin/streax/internal/domain"

const (
	WeeklyMilestoneDays  = 7
	MonthlyMilestoneDays = 30

	// MonthlyBacklogBonus is credited (subject to MaxBacklogSavers) every
	// MonthlyMilestoneDays of streak.
	MonthlyBacklogBonus = 60
	// MonthlyStreakSaverBonus is added on top of the weekly saver on monthly milestones.
	MonthlyStreakSaverBonus = 2
)

// Outcome reports what a single UpdateStreakStatus call changed.
type Outcome struct {
	// Counted is true when this call added the day to the streak.
	Counted bool
	// AlreadyCounted is true when the day qualified but was counted earlier.
	AlreadyCounted bool
	// Broken is true when an active streak was reset to zero; BrokenLength
	// is the streak that was lost.
	Broken       bool
	BrokenLength int

	StreakSaversAwarded   int
	BacklogMinutesAwarded int
	Weekly                bool
	Monthly               bool
}

// Milestone reports whether any milestone reward was handed out.
func (o Outcome) Milestone() bool {
	return o.Weekly || o.Monthly
}

// IsGoalMet reports whether productive minutes reached the goal.
func IsGoalMet(productiveMinutes, goalMinutes int) bool {
	return productiveMinutes >= goalMinutes
}

// Qualifies reports whether log counts toward the streak.
func Qualifies(log *domain.DailyLog) bool {
	return IsGoalMet(log.ProductiveMinutes, log.GoalMinutes) || log.StreakSaverUsed
}

// GoalProgress returns percent of goal reached, clamped to 100. A zero goal
// counts as complete.
func GoalProgress(productiveMinutes, goalMinutes int) float64 {
	if goalMinutes <= 0 {
		return 100
	}
	return min(100, float64(productiveMinutes)/float64(goalMinutes)*100)
}

// UpdateStreakStatus re-evaluates the ledger after today's log changed.
//
// A qualifying day is added to the streak exactly once; later calls for the
// same day are no-ops. A non-qualifying day resets the current streak and
// leaves LongestStreak and TotalDays untouched.
func UpdateStreakStatus(data *domain.AppData, today *domain.DailyLog) Outcome {
	ledger := &data.StreakData

	if !Qualifies(today) {
		return breakStreak(ledger)
	}

	if today.StreakCounted {
		return Outcome{AlreadyCounted: true}
	}

	out := Outcome{Counted: true}
	today.StreakCounted = true
	ledger.CurrentStreak++
	ledger.TotalDays++
	if ledger.CurrentStreak > ledger.LongestStreak {
		ledger.LongestStreak = ledger.CurrentStreak
	}

	if ledger.CurrentStreak%WeeklyMilestoneDays == 0 {
		ledger.StreakSavers++
		ledger.LastStreakSaverEarned = today.Date
		out.StreakSaversAwarded++
		out.Weekly = true
	}

	if ledger.CurrentStreak%MonthlyMilestoneDays == 0 {
		out.BacklogMinutesAwarded = creditBacklogSavers(ledger, MonthlyBacklogBonus)
		ledger.StreakSavers += MonthlyStreakSaverBonus
		out.StreakSaversAwarded += MonthlyStreakSaverBonus
		out.Monthly = true
	}

	return out
}

// CloseDay settles the ledger for a day that is over. A day without a log,
// or whose log never qualified, resets the streak. A qualifying day was
// already counted when it changed and is left alone.
func CloseDay(data *domain.AppData, date string) Outcome {
	if log, ok := data.DailyLogs[date]; ok && Qualifies(log) {
		return Outcome{}
	}
	return breakStreak(&data.StreakData)
}

func breakStreak(ledger *domain.StreakData) Outcome {
	var out Outcome
	if ledger.CurrentStreak > 0 {
		out.Broken = true
		out.BrokenLength = ledger.CurrentStreak
	}
	ledger.CurrentStreak = 0
	return out
}
