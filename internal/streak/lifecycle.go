package streak

import (
	"fmt"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
)

// GetOrCreateLog returns the log for date, creating it from the previous
// calendar day's log on first access. Creation happens once per date.
func GetOrCreateLog(data *domain.AppData, date string) *domain.DailyLog {
	if data.DailyLogs == nil {
		data.DailyLogs = make(map[string]*domain.DailyLog)
	}
	if log, ok := data.DailyLogs[date]; ok {
		return log
	}

	yesterday := data.DailyLogs[domain.PreviousDate(date)]
	log := NewDailyLog(date, yesterday, data.Profile.DailyCommitmentMinutes, &data.StreakData)
	data.DailyLogs[date] = log
	return log
}

// TodayLog is GetOrCreateLog for the local calendar day containing now.
func TodayLog(data *domain.AppData, now time.Time) *domain.DailyLog {
	return GetOrCreateLog(data, domain.DateKey(now))
}

// RecordSession appends a finished session to today's log, adds its minutes
// and re-evaluates rewards and the streak.
func RecordSession(data *domain.AppData, today *domain.DailyLog, session domain.PomodoroSession) (Outcome, error) {
	if session.DurationMinutes <= 0 {
		return Outcome{}, fmt.Errorf("session %q has no duration", session.TaskName)
	}
	today.Sessions = append(today.Sessions, session)
	today.ProductiveMinutes += session.DurationMinutes
	today.FreeTimeEarned = CalculateFreeTimeRewards(today.ProductiveMinutes)
	return UpdateStreakStatus(data, today), nil
}
