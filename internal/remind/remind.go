// Package remind runs the daily morning and evening reminders on a cron
// schedule and delivers them through a notify.Notifier.
package remind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/streak"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// TodayReader returns today's log. ErrSkip (or any error wrapping it) means
// there is nothing to remind about yet.
type TodayReader interface {
	Today(ctx context.Context) (*domain.DailyLog, error)
}

// ErrSkip lets a TodayReader tell the scheduler to stay quiet, e.g. before
// onboarding.
var ErrSkip = errors.New("reminder skipped")

type Schedule struct {
	Morning string
	Evening string
}

type Scheduler struct {
	cron     *cron.Cron
	today    TodayReader
	notifier notify.Notifier
	log      logrus.FieldLogger
	schedule Schedule
	ids      [2]cron.EntryID
}

type Option func(*Scheduler)

// WithLocation evaluates the schedule in loc instead of time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		s.cron = cron.New(cron.WithLocation(loc))
	}
}

// New registers both jobs. Specs use the standard five-field cron syntax.
func New(today TodayReader, notifier notify.Notifier, log logrus.FieldLogger, schedule Schedule, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(time.Local)),
		today:    today,
		notifier: notifier,
		log:      log,
		schedule: schedule,
	}
	for _, o := range opts {
		o(s)
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"morning", schedule.Morning, s.Morning},
		{"evening", schedule.Evening, s.Evening},
	}
	for i, j := range jobs {
		id, err := s.cron.AddFunc(j.spec, s.job(j.name, j.run))
		if err != nil {
			return nil, fmt.Errorf("scheduling %s reminder %q: %w", j.name, j.spec, err)
		}
		s.ids[i] = id
	}
	return s, nil
}

func (s *Scheduler) job(name string, run func(context.Context) error) func() {
	return func() {
		entry := s.log.WithField("job", name)
		entry.Debug("running reminder")
		if err := run(context.Background()); err != nil {
			entry.WithError(err).Error("reminder failed")
		}
	}
}

// Morning sends the daily kick-off reminder once the user is onboarded.
func (s *Scheduler) Morning(ctx context.Context) error {
	_, err := s.today.Today(ctx)
	if errors.Is(err, ErrSkip) {
		s.log.Debug("morning reminder skipped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading today's log: %w", err)
	}
	return s.notifier.Notify(ctx, notify.MorningReminder())
}

// Evening warns about the remaining goal when today's goal is not met yet.
func (s *Scheduler) Evening(ctx context.Context) error {
	today, err := s.today.Today(ctx)
	if errors.Is(err, ErrSkip) {
		s.log.Debug("evening reminder skipped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading today's log: %w", err)
	}
	if streak.IsGoalMet(today.ProductiveMinutes, today.GoalMinutes) {
		return nil
	}
	return s.notifier.Notify(ctx, notify.EveningReminder(today.Deficit()))
}

// Next reports when each reminder fires next. Only valid after Start.
func (s *Scheduler) Next() (morning, evening time.Time) {
	return s.cron.Entry(s.ids[0]).Next, s.cron.Entry(s.ids[1]).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithFields(logrus.Fields{
		"morning": s.schedule.Morning,
		"evening": s.schedule.Evening,
	}).Info("reminder scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("reminder scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is cancelled. ready, when
// set, receives the first fire times once the jobs are scheduled.
func (s *Scheduler) Run(ctx context.Context, ready func(morning, evening time.Time)) error {
	s.Start()
	if ready != nil {
		ready(s.Next())
	}
	<-ctx.Done()
	s.Stop()
	return nil
}
