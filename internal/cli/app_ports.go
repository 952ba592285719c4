package cli

import "github.com/alexanderramin/streax/internal/app"

func (a *App) logSessionUseCase() app.LogSessionUseCase {
	if a.LogSession != nil {
		return a.LogSession
	}
	return a.Tracker
}

func (a *App) dashboardUseCase() app.DashboardUseCase {
	if a.Dashboard != nil {
		return a.Dashboard
	}
	return a.Stats
}

func (a *App) insightsUseCase() app.InsightsUseCase {
	if a.Insights != nil {
		return a.Insights
	}
	return a.Stats
}
