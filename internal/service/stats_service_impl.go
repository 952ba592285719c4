package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/streak"
)

type statsService struct {
	store    *Store
	observer UseCaseObserver
}

func NewStatsService(store *Store, observers ...UseCaseObserver) StatsService {
	return &statsService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *statsService) Dashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	now := s.store.now()
	if req.Now != nil {
		now = *req.Now
	}

	var resp *app.DashboardResponse
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		_, existed := data.DailyLogs[domain.DateKey(now)]
		before := data.StreakData
		today := s.store.settleDay(t, data, now)
		if !existed || before != data.StreakData {
			if err := s.store.save(ctx, t, data); err != nil {
				return err
			}
		}

		feed, err := t.feed.List(ctx)
		if err != nil {
			return err
		}
		resp = buildDashboard(data, today, now)
		resp.UnreadNotifications = notify.UnreadCount(feed) + len(t.events)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func buildDashboard(data *domain.AppData, today *domain.DailyLog, now time.Time) *app.DashboardResponse {
	ledger := data.StreakData
	view := app.TodayView{
		Date:              today.Date,
		ProductiveMinutes: today.ProductiveMinutes,
		GoalMinutes:       today.GoalMinutes,
		DeficitMinutes:    today.Deficit(),
		BacklogMinutes:    today.BacklogMinutes,
		ProgressPct:       streak.GoalProgress(today.ProductiveMinutes, today.GoalMinutes),
		GoalMet:           streak.IsGoalMet(today.ProductiveMinutes, today.GoalMinutes),
		StreakSaverUsed:   today.StreakSaverUsed,
		Sessions:          len(today.Sessions),
		FreeTimeEarned:    today.FreeTimeEarned,
		FreeTimeRemaining: today.FreeTimeRemaining(),
		Notes:             today.Notes,
	}
	if tier, ok := streak.NextRewardTier(today.ProductiveMinutes); ok {
		view.NextReward = &tier
	}

	maxRedeem := streak.ClampBacklogRedemption(ledger.BacklogSavers, today, ledger.BacklogSavers)
	return &app.DashboardResponse{
		GeneratedAt:          now,
		Profile:              data.Profile,
		Today:                view,
		Streak:               ledger,
		StreakAtRisk:         !streak.Qualifies(today) && ledger.CurrentStreak > 0,
		NextMilestone:        streak.NextMilestone(ledger.CurrentStreak),
		CanUseStreakSaver:    ledger.StreakSavers > 0 && !today.StreakSaverUsed && !view.GoalMet,
		CanUseBacklogSaver:   maxRedeem > 0,
		MaxBacklogRedemption: maxRedeem,
	}
}

func (s *statsService) Insights(ctx context.Context, req app.InsightsRequest) (resp *app.InsightsResponse, err error) {
	defer observe(ctx, s.observer, "insights", map[string]any{"timeframe": req.Timeframe})(&err)

	now := s.store.now()
	if req.Now != nil {
		now = *req.Now
	}
	from, to, err := insightsRange(req, now)
	if err != nil {
		return nil, err
	}

	err = s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		resp = buildInsights(req.Timeframe, data, from, to)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// insightsRange resolves the inclusive date bounds of a request. Empty
// bounds mean unbounded.
func insightsRange(req app.InsightsRequest, now time.Time) (from, to string, err error) {
	today := domain.DateKey(now)
	daysBack := func(n int) string {
		t, _ := domain.ParseDate(today)
		return domain.DateKey(t.AddDate(0, 0, -n))
	}

	switch req.Timeframe {
	case app.TimeframeDay, "":
		day := req.Date
		if day == "" {
			day = today
		}
		if _, err := domain.ParseDate(day); err != nil {
			return "", "", &app.InsightsError{Code: app.InsightsErrInvalidRange, Message: err.Error()}
		}
		return day, day, nil
	case app.TimeframeWeek:
		return daysBack(app.WeekDays - 1), today, nil
	case app.TimeframeMonth:
		return daysBack(app.MonthDays - 1), today, nil
	case app.TimeframeAll:
		return "", "", nil
	case app.TimeframeCustom:
		from, to = req.From, req.To
		if from == "" {
			from = daysBack(app.MonthDays)
		}
		if to == "" {
			to = today
		}
		for _, d := range []string{from, to} {
			if _, err := domain.ParseDate(d); err != nil {
				return "", "", &app.InsightsError{Code: app.InsightsErrInvalidRange, Message: err.Error()}
			}
		}
		if from > to {
			return "", "", &app.InsightsError{
				Code:    app.InsightsErrInvalidRange,
				Message: fmt.Sprintf("from %s is after to %s", from, to),
			}
		}
		return from, to, nil
	default:
		return "", "", &app.InsightsError{
			Code:    app.InsightsErrInvalidTimeframe,
			Message: fmt.Sprintf("unknown timeframe %q", req.Timeframe),
		}
	}
}

func buildInsights(tf app.Timeframe, data *domain.AppData, from, to string) *app.InsightsResponse {
	if tf == "" {
		tf = app.TimeframeDay
	}
	dates := make([]string, 0, len(data.DailyLogs))
	for date := range data.DailyLogs {
		if (from == "" || date >= from) && (to == "" || date <= to) {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	resp := &app.InsightsResponse{
		Timeframe: tf,
		Summary:   app.InsightsSummary{From: from, To: to},
		Days:      make([]app.DayStat, 0, len(dates)),
	}
	sum := &resp.Summary
	for _, date := range dates {
		log := data.DailyLogs[date]
		day := app.DayStat{
			Date:              date,
			ProductiveMinutes: log.ProductiveMinutes,
			GoalMinutes:       log.GoalMinutes,
			Sessions:          len(log.Sessions),
			GoalMet:           streak.IsGoalMet(log.ProductiveMinutes, log.GoalMinutes),
			StreakSaverUsed:   log.StreakSaverUsed,
			Notes:             log.Notes,
		}
		resp.Days = append(resp.Days, day)

		sum.TotalMinutes += day.ProductiveMinutes
		sum.TotalSessions += day.Sessions
		for _, session := range log.Sessions {
			if session.Completed {
				sum.CompletedSessions++
			}
		}
		if day.GoalMet {
			sum.GoalsMet++
		}
	}

	sum.DaysTracked = len(resp.Days)
	if sum.DaysTracked == 0 {
		return resp
	}
	if sum.From == "" {
		sum.From = resp.Days[0].Date
	}
	if sum.To == "" {
		sum.To = resp.Days[len(resp.Days)-1].Date
	}
	sum.AverageMinutes = float64(sum.TotalMinutes) / float64(sum.DaysTracked)
	sum.CompletionRate = int(math.Round(float64(sum.GoalsMet) / float64(sum.DaysTracked) * 100))

	best := resp.Days[0]
	for _, d := range resp.Days[1:] {
		if d.ProductiveMinutes > best.ProductiveMinutes {
			best = d
		}
	}
	sum.BestDay = &best
	return resp
}
