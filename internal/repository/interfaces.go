package repository

import (
	"context"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/timer"
)

// Fixed keys of the documents held in the key/value store.
const (
	AppDataKey       = "STREAX_DATA"
	TimerKey         = "STREAX_TIMER"
	NotificationsKey = "STREAX_NOTIFICATIONS"
)

type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// AppDataRepo stores the application document. Load returns nil when
// nothing usable is stored.
type AppDataRepo interface {
	Load(ctx context.Context) (*domain.AppData, error)
	Save(ctx context.Context, data *domain.AppData) error
	Clear(ctx context.Context) error
}

type TimerStateRepo interface {
	Load(ctx context.Context) (*timer.State, error)
	Save(ctx context.Context, s *timer.State) error
	Clear(ctx context.Context) error
}

// NotificationRepo stores the notification feed, newest first.
type NotificationRepo interface {
	List(ctx context.Context) ([]domain.Notification, error)
	Save(ctx context.Context, feed []domain.Notification) error
	Clear(ctx context.Context) error
}
