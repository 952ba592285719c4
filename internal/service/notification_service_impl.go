package service

import (
	"context"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
)

type notificationService struct {
	store *Store
}

func NewNotificationService(store *Store) NotificationService {
	return &notificationService{store: store}
}

// Notify adds events to the feed. It works before onboarding too.
func (s *notificationService) Notify(ctx context.Context, events ...notify.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.store.run(ctx, func(_ context.Context, t *txScope) error {
		t.emit(events...)
		return nil
	})
}

func (s *notificationService) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	var feed []domain.Notification
	err := s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		all, err := t.feed.List(ctx)
		if err != nil {
			return err
		}
		feed = notify.Head(all, limit)
		return nil
	})
	return feed, err
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	feed, err := s.List(ctx, 0)
	if err != nil {
		return 0, err
	}
	return notify.UnreadCount(feed), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		feed, err := t.feed.List(ctx)
		if err != nil {
			return err
		}
		if !notify.MarkRead(feed, id) {
			return ErrNotificationNotFound
		}
		return t.feed.Save(ctx, feed)
	})
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.store.run(ctx, func(ctx context.Context, t *txScope) error {
		feed, err := t.feed.List(ctx)
		if err != nil {
			return err
		}
		notify.MarkAllRead(feed)
		return t.feed.Save(ctx, feed)
	})
}
