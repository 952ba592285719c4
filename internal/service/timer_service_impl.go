package service

import (
	"context"
	"time"

	"github.com/alexanderramin/streax/internal/timer"
)

type timerService struct {
	store    *Store
	maxAge   time.Duration
	observer UseCaseObserver
}

// NewTimerService persists the pomodoro timer. State older than maxAge is
// discarded instead of resumed.
func NewTimerService(store *Store, maxAge time.Duration, observers ...UseCaseObserver) TimerService {
	if maxAge <= 0 {
		maxAge = timer.DefaultMaxAge
	}
	return &timerService{store: store, maxAge: maxAge, observer: useCaseObserverOrNoop(observers)}
}

// step loads and reconciles the timer, applies op, logs any finished
// session into today's log and saves the result, all in one transaction.
func (s *timerService) step(ctx context.Context, op func(st *timer.State, now time.Time) (timer.Transition, error)) (*TimerUpdate, error) {
	var upd *TimerUpdate
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.store.load(ctx, t)
		if err != nil {
			return err
		}
		stored, err := t.timer.Load(ctx)
		if err != nil {
			return err
		}

		now := s.store.now()
		st, tr := timer.Restore(stored, now, s.maxAge)
		if st == nil {
			st = timer.NewState(now)
		}
		if op != nil {
			opTr, err := op(st, now)
			if err != nil {
				return err
			}
			tr.FocusCompleted = tr.FocusCompleted || opTr.FocusCompleted
			tr.BreakCompleted = tr.BreakCompleted || opTr.BreakCompleted
			if opTr.Session != nil {
				tr.Session = opTr.Session
			}
		}

		upd = &TimerUpdate{State: st, Transition: tr}
		if tr.Session != nil {
			upd.Logged, err = s.store.recordSession(t, data, *tr.Session)
			if err != nil {
				return err
			}
			if err := s.store.save(ctx, t, data); err != nil {
				return err
			}
		}
		if op == nil && !tr.Changed() && st == stored {
			return nil
		}
		return t.timer.Save(ctx, st)
	})
	if err != nil {
		return nil, err
	}
	return upd, nil
}

func (s *timerService) Current(ctx context.Context) (*TimerUpdate, error) {
	return s.step(ctx, nil)
}

func (s *timerService) Start(ctx context.Context, task string, preset int) (upd *TimerUpdate, err error) {
	defer observe(ctx, s.observer, "timer-start", map[string]any{"task": task, "preset": preset})(&err)
	return s.step(ctx, func(st *timer.State, now time.Time) (timer.Transition, error) {
		return timer.Transition{}, st.Start(task, preset, now)
	})
}

func (s *timerService) Pause(ctx context.Context) (*TimerUpdate, error) {
	return s.step(ctx, func(st *timer.State, now time.Time) (timer.Transition, error) {
		return timer.Transition{}, st.Pause(now)
	})
}

func (s *timerService) Resume(ctx context.Context) (*TimerUpdate, error) {
	return s.step(ctx, func(st *timer.State, now time.Time) (timer.Transition, error) {
		return timer.Transition{}, st.Resume(now)
	})
}

func (s *timerService) Tick(ctx context.Context) (*TimerUpdate, error) {
	return s.step(ctx, nil)
}

func (s *timerService) Stop(ctx context.Context) (upd *TimerUpdate, err error) {
	defer observe(ctx, s.observer, "timer-stop", nil)(&err)
	return s.step(ctx, func(st *timer.State, now time.Time) (timer.Transition, error) {
		return st.Stop(now)
	})
}
