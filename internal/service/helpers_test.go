package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/repository"
	"github.com/alexanderramin/streax/internal/testutil"
	"github.com/alexanderramin/streax/internal/timer"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testNow is 09:00 local on 2026-03-10.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

type fixture struct {
	db    *sql.DB
	clock *fakeClock
	store *Store

	profiles      ProfileService
	tracker       TrackerService
	stats         StatsService
	backups       BackupService
	notifications NotificationService
	timers        TimerService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := &fakeClock{now: testNow}
	log, _ := logtest.NewNullLogger()
	store := NewStore(testutil.NewTestUoW(database), log, WithClock(clock.Now))

	return &fixture{
		db:            database,
		clock:         clock,
		store:         store,
		profiles:      NewProfileService(store),
		tracker:       NewTrackerService(store),
		stats:         NewStatsService(store),
		backups:       NewBackupService(store),
		notifications: NewNotificationService(store),
		timers:        NewTimerService(store, timer.DefaultMaxAge),
	}
}

func (f *fixture) onboard(t *testing.T, commitment int) {
	t.Helper()
	_, err := f.profiles.Onboard(context.Background(), testutil.NewTestProfile(testutil.WithCommitment(commitment)))
	require.NoError(t, err)
}

// seed writes data directly, bypassing the services.
func (f *fixture) seed(t *testing.T, data *domain.AppData) {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	require.NoError(t, repository.NewSQLiteAppDataRepo(f.db, log).Save(context.Background(), data))
}

func (f *fixture) load(t *testing.T) *domain.AppData {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	data, err := repository.NewSQLiteAppDataRepo(f.db, log).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, data)
	return data
}

func (f *fixture) titles(t *testing.T) []string {
	t.Helper()
	feed, err := f.notifications.List(context.Background(), 0)
	require.NoError(t, err)
	out := make([]string, len(feed))
	for i, n := range feed {
		out[i] = n.Title
	}
	return out
}
