package contract

import "github.com/alexanderramin/streax/internal/app"

type DashboardRequest = app.DashboardRequest

func NewDashboardRequest() DashboardRequest {
	return app.NewDashboardRequest()
}

type TodayView = app.TodayView

type DashboardResponse = app.DashboardResponse
