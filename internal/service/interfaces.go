package service

import (
	"context"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/contract"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/timer"
)

type ProfileService interface {
	Onboard(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error)
	Get(ctx context.Context) (*domain.UserProfile, error)
	// Update replaces the profile. A new daily commitment applies from the
	// next day created; existing goals are never recomputed.
	Update(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error)
}

type TrackerService interface {
	Today(ctx context.Context) (*domain.DailyLog, error)
	Day(ctx context.Context, date string) (*domain.DailyLog, error)
	LogSession(ctx context.Context, s domain.PomodoroSession) (*app.LogSessionResult, error)
	UseStreakSaver(ctx context.Context) (*domain.DailyLog, error)
	// UseBacklogSaver redeems up to minutes of backlog savers, clamped to
	// today's deficit, and returns the minutes applied.
	UseBacklogSaver(ctx context.Context, minutes int) (int, error)
	SetNotes(ctx context.Context, notes string) error
	UseFreeTime(ctx context.Context, minutes int) (*domain.DailyLog, error)
	// Reset deletes every stored document.
	Reset(ctx context.Context) error
}

type StatsService interface {
	Dashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
	Insights(ctx context.Context, req contract.InsightsRequest) (*contract.InsightsResponse, error)
}

type BackupService interface {
	Export(ctx context.Context) (*domain.BackupData, error)
	// Restore validates the backup completely before replacing the stored
	// document.
	Restore(ctx context.Context, b *domain.BackupData) error
}

type NotificationService interface {
	notify.Notifier
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// TimerUpdate is the timer after an operation, with any session it logged.
type TimerUpdate struct {
	State      *timer.State
	Transition timer.Transition
	Logged     *app.LogSessionResult
}

type TimerService interface {
	Current(ctx context.Context) (*TimerUpdate, error)
	Start(ctx context.Context, task string, preset int) (*TimerUpdate, error)
	Pause(ctx context.Context) (*TimerUpdate, error)
	Resume(ctx context.Context) (*TimerUpdate, error)
	Tick(ctx context.Context) (*TimerUpdate, error)
	Stop(ctx context.Context) (*TimerUpdate, error)
}
