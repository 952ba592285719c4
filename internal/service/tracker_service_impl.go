package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/streak"
)

type trackerService struct {
	store    *Store
	observer UseCaseObserver
}

func NewTrackerService(store *Store, observers ...UseCaseObserver) TrackerService {
	return &trackerService{store: store, observer: useCaseObserverOrNoop(observers)}
}

// settleToday returns today's log, creating it on first access.
func (s *Store) settleToday(t *txScope, data *domain.AppData) *domain.DailyLog {
	return s.settleDay(t, data, s.now())
}

// settleDay creates the log for now's day on first access and, when it is
// created, closes the previous day so a missed or unmet day breaks the
// streak. Viewing a day never evaluates it.
func (s *Store) settleDay(t *txScope, data *domain.AppData, now time.Time) *domain.DailyLog {
	date := domain.DateKey(now)
	if _, ok := data.DailyLogs[date]; !ok {
		t.emit(notify.ForOutcome(data, streak.CloseDay(data, domain.PreviousDate(date)))...)
	}
	return streak.GetOrCreateLog(data, date)
}

// recordSession adds session to today's log and emits the resulting events.
func (s *Store) recordSession(t *txScope, data *domain.AppData, session domain.PomodoroSession) (*app.LogSessionResult, error) {
	today := s.settleToday(t, data)
	wasMet := streak.IsGoalMet(today.ProductiveMinutes, today.GoalMinutes)

	out, err := streak.RecordSession(data, today, session)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t.emit(notify.SessionLogged(session))
	if !wasMet && streak.IsGoalMet(today.ProductiveMinutes, today.GoalMinutes) {
		t.emit(notify.GoalAchieved(today.ProductiveMinutes))
	}
	t.emit(notify.ForOutcome(data, out)...)
	return &app.LogSessionResult{Log: today, Outcome: out}, nil
}

func (s *trackerService) Today(ctx context.Context) (*domain.DailyLog, error) {
	var today *domain.DailyLog
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		_, existed := data.DailyLogs[domain.DateKey(s.store.now())]
		before := data.StreakData
		today = s.store.settleToday(t, data)
		if existed && before == data.StreakData {
			return nil
		}
		return s.store.save(ctx, t, data)
	})
	return today, err
}

func (s *trackerService) Day(ctx context.Context, date string) (*domain.DailyLog, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	var log *domain.DailyLog
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		l, ok := data.DailyLogs[date]
		if !ok {
			return fmt.Errorf("%s: %w", date, ErrDayNotTracked)
		}
		log = l
		return nil
	})
	return log, err
}

func (s *trackerService) LogSession(ctx context.Context, session domain.PomodoroSession) (res *app.LogSessionResult, err error) {
	defer observe(ctx, s.observer, "log-session", map[string]any{
		"task":      session.TaskName,
		"minutes":   session.DurationMinutes,
		"completed": session.Completed,
	})(&err)

	session.TaskName = strings.TrimSpace(session.TaskName)
	if session.EndTime.IsZero() {
		session.EndTime = s.store.now().UTC()
	}
	if session.StartTime.IsZero() {
		session.StartTime = session.EndTime.Add(-minutes(session.DurationMinutes))
	}
	if err = validateStruct(session, ErrInvalidInput); err != nil {
		return nil, err
	}

	err = s.store.mutate(ctx, func(t *txScope, data *domain.AppData) error {
		var err error
		res, err = s.store.recordSession(t, data, session)
		return err
	})
	return res, err
}

func (s *trackerService) UseStreakSaver(ctx context.Context) (today *domain.DailyLog, err error) {
	defer observe(ctx, s.observer, "use-streak-saver", nil)(&err)

	err = s.store.mutate(ctx, func(t *txScope, data *domain.AppData) error {
		today = s.store.settleToday(t, data)
		out, err := streak.UseStreakSaver(data, today)
		if err != nil {
			return err
		}
		t.emit(notify.StreakSaverUsed())
		t.emit(notify.ForOutcome(data, out)...)
		return nil
	})
	return today, err
}

func (s *trackerService) UseBacklogSaver(ctx context.Context, requested int) (applied int, err error) {
	fields := map[string]any{"requested_min": requested}
	defer observe(ctx, s.observer, "use-backlog-saver", fields)(&err)

	if requested <= 0 {
		return 0, streak.ErrInvalidRedemption
	}
	err = s.store.mutate(ctx, func(t *txScope, data *domain.AppData) error {
		today := s.store.settleToday(t, data)
		balance := data.StreakData.BacklogSavers
		if balance < requested {
			return fmt.Errorf("redeeming %d min with %d available: %w",
				requested, balance, streak.ErrInsufficientBacklogSavers)
		}
		n := streak.ClampBacklogRedemption(requested, today, balance)
		if n == 0 {
			return ErrNoDeficit
		}
		out, err := streak.UseBacklogSaver(data, today, n)
		if err != nil {
			return err
		}
		applied = n
		t.emit(notify.BacklogRedeemed(n))
		t.emit(notify.ForOutcome(data, out)...)
		return nil
	})
	fields["applied_min"] = applied
	return applied, err
}

func (s *trackerService) SetNotes(ctx context.Context, notes string) error {
	return s.store.mutate(ctx, func(t *txScope, data *domain.AppData) error {
		s.store.settleToday(t, data).Notes = strings.TrimSpace(notes)
		return nil
	})
}

func (s *trackerService) UseFreeTime(ctx context.Context, minutes int) (today *domain.DailyLog, err error) {
	defer observe(ctx, s.observer, "use-free-time", map[string]any{"minutes": minutes})(&err)

	err = s.store.mutate(ctx, func(t *txScope, data *domain.AppData) error {
		today = s.store.settleToday(t, data)
		return streak.SpendFreeTime(today, minutes)
	})
	return today, err
}

func (s *trackerService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset", nil)(&err)

	return s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		if err := t.data.Clear(ctx); err != nil {
			return err
		}
		if err := t.timer.Clear(ctx); err != nil {
			return err
		}
		return t.feed.Clear(ctx)
	})
}
