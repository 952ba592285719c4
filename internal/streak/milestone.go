package streak

type MilestoneKind string

const (
	MilestoneWeekly  MilestoneKind = "weekly"
	MilestoneMonthly MilestoneKind = "monthly"
)

type Milestone struct {
	Kind          MilestoneKind
	DaysRemaining int
	Reward        string
}

// NextMilestone projects the closest streak boundary. Ties go to weekly.
func NextMilestone(currentStreak int) Milestone {
	if currentStreak < 0 {
		currentStreak = 0
	}
	untilWeekly := WeeklyMilestoneDays - currentStreak%WeeklyMilestoneDays
	untilMonthly := MonthlyMilestoneDays - currentStreak%MonthlyMilestoneDays

	if untilWeekly <= untilMonthly {
		return Milestone{
			Kind:          MilestoneWeekly,
			DaysRemaining: untilWeekly,
			Reward:        "+1 Streak Saver",
		}
	}
	return Milestone{
		Kind:          MilestoneMonthly,
		DaysRemaining: untilMonthly,
		Reward:        "+60min Backlog Saver + 2 Streak Savers",
	}
}
