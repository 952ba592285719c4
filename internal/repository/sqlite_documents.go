package repository

import (
	"context"

	"github.com/alexanderramin/streax/internal/db"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/sirupsen/logrus"
)

// SQLiteAppDataRepo implements AppDataRepo under AppDataKey.
type SQLiteAppDataRepo struct {
	doc jsonDocument[domain.AppData]
}

func NewSQLiteAppDataRepo(conn db.DBTX, log logrus.FieldLogger) *SQLiteAppDataRepo {
	return &SQLiteAppDataRepo{doc: jsonDocument[domain.AppData]{
		kv: NewSQLiteKVRepo(conn), key: AppDataKey, log: log,
	}}
}

func (r *SQLiteAppDataRepo) Load(ctx context.Context) (*domain.AppData, error) {
	data, err := r.doc.load(ctx)
	if err != nil || data == nil {
		return nil, err
	}
	if data.DailyLogs == nil {
		data.DailyLogs = make(map[string]*domain.DailyLog)
	}
	return data, nil
}

func (r *SQLiteAppDataRepo) Save(ctx context.Context, data *domain.AppData) error {
	return r.doc.save(ctx, data)
}

func (r *SQLiteAppDataRepo) Clear(ctx context.Context) error {
	return r.doc.clear(ctx)
}

// SQLiteTimerStateRepo implements TimerStateRepo under TimerKey.
type SQLiteTimerStateRepo struct {
	doc jsonDocument[timer.State]
}

func NewSQLiteTimerStateRepo(conn db.DBTX, log logrus.FieldLogger) *SQLiteTimerStateRepo {
	return &SQLiteTimerStateRepo{doc: jsonDocument[timer.State]{
		kv: NewSQLiteKVRepo(conn), key: TimerKey, log: log,
	}}
}

func (r *SQLiteTimerStateRepo) Load(ctx context.Context) (*timer.State, error) {
	return r.doc.load(ctx)
}

func (r *SQLiteTimerStateRepo) Save(ctx context.Context, s *timer.State) error {
	return r.doc.save(ctx, s)
}

func (r *SQLiteTimerStateRepo) Clear(ctx context.Context) error {
	return r.doc.clear(ctx)
}

// SQLiteNotificationRepo implements NotificationRepo under NotificationsKey.
type SQLiteNotificationRepo struct {
	doc jsonDocument[[]domain.Notification]
}

func NewSQLiteNotificationRepo(conn db.DBTX, log logrus.FieldLogger) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{doc: jsonDocument[[]domain.Notification]{
		kv: NewSQLiteKVRepo(conn), key: NotificationsKey, log: log,
	}}
}

func (r *SQLiteNotificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	feed, err := r.doc.load(ctx)
	if err != nil || feed == nil {
		return nil, err
	}
	return *feed, nil
}

func (r *SQLiteNotificationRepo) Save(ctx context.Context, feed []domain.Notification) error {
	return r.doc.save(ctx, &feed)
}

func (r *SQLiteNotificationRepo) Clear(ctx context.Context) error {
	return r.doc.clear(ctx)
}
