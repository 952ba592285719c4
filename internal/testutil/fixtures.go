package testutil

import (
	"time"

	"github.com/alexanderramin/streax/internal/domain"
)

// FixedTime is the reference instant used by fixtures. It is UTC without a
// monotonic reading so documents survive a JSON round trip unchanged.
var FixedTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithName(name string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Name = name
	}
}

func WithCommitment(minutes int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.DailyCommitmentMinutes = minutes
	}
}

func NewTestProfile(opts ...ProfileOption) domain.UserProfile {
	p := domain.UserProfile{
		Name:                   "Ada",
		Role:                   "Engineer",
		LongTermGoal:           "Ship the compiler",
		DailyCommitmentMinutes: 240,
		CreatedAt:              FixedTime,
		Theme:                  domain.ThemeDark,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// Daily log options
type LogOption func(*domain.DailyLog)

func WithProductive(minutes int) LogOption {
	return func(l *domain.DailyLog) {
		l.ProductiveMinutes = minutes
	}
}

func WithGoal(minutes int) LogOption {
	return func(l *domain.DailyLog) {
		l.GoalMinutes = minutes
	}
}

func WithBacklog(minutes int) LogOption {
	return func(l *domain.DailyLog) {
		l.BacklogMinutes = minutes
	}
}

func WithSaverUsed() LogOption {
	return func(l *domain.DailyLog) {
		l.StreakSaverUsed = true
	}
}

func WithSessions(sessions ...domain.PomodoroSession) LogOption {
	return func(l *domain.DailyLog) {
		l.Sessions = append(l.Sessions, sessions...)
	}
}

// NewTestLog returns a log for date with a 240 minute goal and nothing
// done yet.
func NewTestLog(date string, opts ...LogOption) *domain.DailyLog {
	l := &domain.DailyLog{
		Date:        date,
		GoalMinutes: 240,
		Sessions:    []domain.PomodoroSession{},
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Session options
type SessionOption func(*domain.PomodoroSession)

func WithPartial(actual int) SessionOption {
	return func(s *domain.PomodoroSession) {
		s.Completed = false
		s.DurationMinutes = actual
		s.ActualFocusMinutes = &actual
		s.EndTime = s.StartTime.Add(time.Duration(actual) * time.Minute)
	}
}

func WithStart(start time.Time) SessionOption {
	return func(s *domain.PomodoroSession) {
		d := s.EndTime.Sub(s.StartTime)
		s.StartTime = start
		s.EndTime = start.Add(d)
	}
}

func NewTestSession(task string, minutes int, opts ...SessionOption) domain.PomodoroSession {
	s := domain.PomodoroSession{
		TaskName:        task,
		StartTime:       FixedTime,
		EndTime:         FixedTime.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		Preset:          "Classic (25/5)",
		Completed:       true,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// App data options
type AppDataOption func(*domain.AppData)

func WithProfile(p domain.UserProfile) AppDataOption {
	return func(d *domain.AppData) {
		d.Profile = p
	}
}

func WithLog(l *domain.DailyLog) AppDataOption {
	return func(d *domain.AppData) {
		d.DailyLogs[l.Date] = l
	}
}

func WithStreak(s domain.StreakData) AppDataOption {
	return func(d *domain.AppData) {
		d.StreakData = s
	}
}

func NewTestAppData(opts ...AppDataOption) *domain.AppData {
	d := domain.NewAppData(NewTestProfile(), FixedTime)
	for _, o := range opts {
		o(d)
	}
	return d
}
