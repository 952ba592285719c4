// Package notify builds and delivers the user-facing events raised by the
// tracker: session logging, goals, savers, milestones and reminders.
package notify

import (
	"context"
	"errors"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/sirupsen/logrus"
)

// DefaultLimit is how many notifications the feed keeps.
const DefaultLimit = 50

type Event struct {
	Kind    domain.NotificationKind
	Title   string
	Message string
}

// Notifier delivers events. Implementations must be safe to call after the
// state change the event describes has been committed.
type Notifier interface {
	Notify(ctx context.Context, events ...Event) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, events ...Event) error

func (f NotifierFunc) Notify(ctx context.Context, events ...Event) error {
	return f(ctx, events...)
}

type Noop struct{}

func (Noop) Notify(context.Context, ...Event) error { return nil }

// LogNotifier writes events to a logrus logger at info level.
type LogNotifier struct {
	Log logrus.FieldLogger
}

func (n LogNotifier) Notify(_ context.Context, events ...Event) error {
	for _, e := range events {
		n.Log.WithFields(logrus.Fields{
			"kind":  e.Kind,
			"title": e.Title,
		}).Info(e.Message)
	}
	return nil
}

// Multi delivers every event to each notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, events ...Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
