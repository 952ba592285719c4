package app

import "time"

type Timeframe string

const (
	TimeframeDay    Timeframe = "day"
	TimeframeWeek   Timeframe = "week"
	TimeframeMonth  Timeframe = "month"
	TimeframeAll    Timeframe = "all"
	TimeframeCustom Timeframe = "custom"
)

// Days covered by the rolling timeframes and the default custom range.
const (
	WeekDays  = 7
	MonthDays = 30
)

func ParseTimeframe(s string) (Timeframe, bool) {
	switch tf := Timeframe(s); tf {
	case TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeAll, TimeframeCustom:
		return tf, true
	default:
		return "", false
	}
}

type InsightsRequest struct {
	Timeframe Timeframe
	// Date selects the day for TimeframeDay; empty means today.
	Date string
	// From and To bound TimeframeCustom (inclusive); empty values default
	// to the last MonthDays days.
	From string
	To   string
	Now  *time.Time
}

func NewInsightsRequest(tf Timeframe) InsightsRequest {
	return InsightsRequest{Timeframe: tf}
}

type DayStat struct {
	Date              string
	ProductiveMinutes int
	GoalMinutes       int
	Sessions          int
	GoalMet           bool
	StreakSaverUsed   bool
	Notes             string
}

type InsightsSummary struct {
	From              string
	To                string
	DaysTracked       int
	TotalMinutes      int
	TotalSessions     int
	CompletedSessions int
	AverageMinutes    float64
	GoalsMet          int
	// CompletionRate is the rounded percentage of tracked days whose goal
	// was met.
	CompletionRate int
	BestDay        *DayStat
}

type InsightsResponse struct {
	Timeframe Timeframe
	Summary   InsightsSummary
	// Days are ordered oldest first.
	Days []DayStat
}

type InsightsErrorCode string

const (
	InsightsErrInvalidTimeframe InsightsErrorCode = "INVALID_TIMEFRAME"
	InsightsErrInvalidRange     InsightsErrorCode = "INVALID_RANGE"
)

type InsightsError struct {
	Code    InsightsErrorCode
	Message string
}

func (e *InsightsError) Error() string {
	return string(e.Code) + ": " + e.Message
}
