package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/streax/internal/db"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/repository"
	"github.com/sirupsen/logrus"
)

// Store serialises every service operation on the persisted documents. Each
// operation runs load, mutate and save inside one transaction, so a failure
// at any step leaves the stored state untouched. Services built on the same
// Store never interleave.
type Store struct {
	mu    sync.Mutex
	uow   db.UnitOfWork
	log   logrus.FieldLogger
	clock func() time.Time
	limit int
	sink  notify.Notifier
}

type StoreOption func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithNotificationLimit caps the stored notification feed.
func WithNotificationLimit(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithNotifier forwards committed events to n in addition to the feed.
func WithNotifier(n notify.Notifier) StoreOption {
	return func(s *Store) {
		s.sink = n
	}
}

func NewStore(uow db.UnitOfWork, log logrus.FieldLogger, opts ...StoreOption) *Store {
	s := &Store{
		uow:   uow,
		log:   log,
		clock: time.Now,
		limit: notify.DefaultLimit,
		sink:  notify.Noop{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) now() time.Time {
	return s.clock()
}

// txScope is what an operation sees inside its transaction.
type txScope struct {
	data   repository.AppDataRepo
	timer  repository.TimerStateRepo
	feed   repository.NotificationRepo
	events []notify.Event
}

func (t *txScope) emit(events ...notify.Event) {
	t.events = append(t.events, events...)
}

// run executes fn in a transaction. Events emitted by fn are added to the
// notification feed in the same transaction and delivered to the notifier
// only after commit.
func (s *Store) run(ctx context.Context, fn func(ctx context.Context, t *txScope) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var committed []notify.Event
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		t := &txScope{
			data:  repository.NewSQLiteAppDataRepo(tx, s.log),
			timer: repository.NewSQLiteTimerStateRepo(tx, s.log),
			feed:  repository.NewSQLiteNotificationRepo(tx, s.log),
		}
		if err := fn(ctx, t); err != nil {
			return err
		}
		if len(t.events) == 0 {
			return nil
		}
		feed, err := t.feed.List(ctx)
		if err != nil {
			return err
		}
		if err := t.feed.Save(ctx, notify.Prepend(feed, s.now(), s.limit, t.events...)); err != nil {
			return err
		}
		committed = t.events
		return nil
	})
	if err != nil {
		return err
	}
	if len(committed) > 0 {
		if err := s.sink.Notify(ctx, committed...); err != nil {
			s.log.WithError(err).Warn("delivering notifications")
		}
	}
	return nil
}

// load returns the application document or ErrNotOnboarded.
func (s *Store) load(ctx context.Context, t *txScope) (*domain.AppData, error) {
	data, err := t.data.Load(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNotOnboarded
	}
	return data, nil
}

// save stamps LastUpdated and writes the document.
func (s *Store) save(ctx context.Context, t *txScope, data *domain.AppData) error {
	data.LastUpdated = s.now().UTC()
	return t.data.Save(ctx, data)
}

// mutate loads the document, applies fn and saves it.
func (s *Store) mutate(ctx context.Context, fn func(t *txScope, data *domain.AppData) error) error {
	return s.run(ctx, func(ctx context.Context, t *txScope) error {
		data, err := s.load(ctx, t)
		if err != nil {
			return err
		}
		if err := fn(t, data); err != nil {
			return err
		}
		return s.save(ctx, t, data)
	})
}
