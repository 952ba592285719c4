package app

import (
	"context"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
)

type DashboardUseCase interface {
	Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type InsightsUseCase interface {
	Insights(ctx context.Context, req InsightsRequest) (*InsightsResponse, error)
}

// LogSessionResult is today's log and ledger outcome after a session.
type LogSessionResult struct {
	Log     *domain.DailyLog
	Outcome streak.Outcome
}

type LogSessionUseCase interface {
	LogSession(ctx context.Context, s domain.PomodoroSession) (*LogSessionResult, error)
}
