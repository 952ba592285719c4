package contract

import "github.com/alexanderramin/streax/internal/app"

type Timeframe = app.Timeframe

const (
	TimeframeDay    Timeframe = app.TimeframeDay
	TimeframeWeek   Timeframe = app.TimeframeWeek
	TimeframeMonth  Timeframe = app.TimeframeMonth
	TimeframeAll    Timeframe = app.TimeframeAll
	TimeframeCustom Timeframe = app.TimeframeCustom
)

func ParseTimeframe(s string) (Timeframe, bool) {
	return app.ParseTimeframe(s)
}

type InsightsRequest = app.InsightsRequest

func NewInsightsRequest(tf Timeframe) InsightsRequest {
	return app.NewInsightsRequest(tf)
}

type DayStat = app.DayStat

type InsightsSummary = app.InsightsSummary

type InsightsResponse = app.InsightsResponse

type InsightsErrorCode = app.InsightsErrorCode

const (
	InsightsErrInvalidTimeframe InsightsErrorCode = app.InsightsErrInvalidTimeframe
	InsightsErrInvalidRange     InsightsErrorCode = app.InsightsErrInvalidRange
)

type InsightsError = app.InsightsError
