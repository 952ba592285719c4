package streak

import (
	"time"

	"github.com/alexanderramin/streax/internal/domain"
)

func newData(commitment int) *domain.AppData {
	return domain.NewAppData(domain.UserProfile{
		Name:                   "Ada",
		DailyCommitmentMinutes: commitment,
		CreatedAt:              time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}

func newLog(date string, productive, goal int) *domain.DailyLog {
	return &domain.DailyLog{
		Date:              date,
		ProductiveMinutes: productive,
		GoalMinutes:       goal,
		Sessions:          []domain.PomodoroSession{},
	}
}

func session(task string, minutes int) domain.PomodoroSession {
	return domain.PomodoroSession{TaskName: task, DurationMinutes: minutes, Completed: true}
}
