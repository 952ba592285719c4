package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
	"github.com/alexanderramin/streax/internal/testutil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSession_GoalAchievedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)

	res, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 60))
	require.NoError(t, err)
	assert.Equal(t, 60, res.Log.ProductiveMinutes)
	assert.Equal(t, 120, res.Log.GoalMinutes)
	assert.False(t, res.Outcome.Counted)

	res, err = f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 60))
	require.NoError(t, err)
	assert.True(t, res.Outcome.Counted)
	assert.Equal(t, 15, res.Log.FreeTimeEarned)

	res, err = f.tracker.LogSession(ctx, testutil.NewTestSession("Review", 25, testutil.WithPartial(10)))
	require.NoError(t, err)
	assert.True(t, res.Outcome.AlreadyCounted)
	assert.Equal(t, 130, res.Log.ProductiveMinutes)
	assert.Len(t, res.Log.Sessions, 3)

	data := f.load(t)
	assert.Equal(t, 1, data.StreakData.CurrentStreak)
	assert.Equal(t, 1, data.StreakData.TotalDays)
	assert.Equal(t, 1, data.StreakData.LongestStreak)

	assert.Equal(t, []string{
		"Session Logged",
		"Daily Goal Achieved! ✨",
		"Session Complete! 🎉",
		"Session Complete! 🎉",
	}, f.titles(t))
}

func TestLogSession_FillsTimesAndValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)

	res, err := f.tracker.LogSession(ctx, domain.PomodoroSession{
		TaskName:        "  Read  ",
		DurationMinutes: 25,
		Completed:       true,
	})
	require.NoError(t, err)
	s := res.Log.Sessions[0]
	assert.Equal(t, "Read", s.TaskName)
	assert.Equal(t, testNow.UTC(), s.EndTime)
	assert.Equal(t, testNow.UTC().Add(-25*time.Minute), s.StartTime)

	_, err = f.tracker.LogSession(ctx, domain.PomodoroSession{TaskName: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.tracker.LogSession(ctx, domain.PomodoroSession{DurationMinutes: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)

	today, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, today.ProductiveMinutes)
}

func TestToday_NextDayCarriesBacklogAndGrantsSavers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 240)

	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 90))
	require.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	today, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", today.Date)
	assert.Equal(t, 240, today.GoalMinutes)
	assert.Equal(t, 150, today.BacklogMinutes)
	assert.Equal(t, streak.DailyBacklogSaverGrant, today.BacklogSaversEarned)

	// A second read creates nothing new.
	_, err = f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, f.load(t).StreakData.BacklogSavers)
}

func TestToday_GoalRatchetsToYesterdaysOutput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)

	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 200))
	require.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	today, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200, today.GoalMinutes)
	assert.Zero(t, today.BacklogMinutes)
}

func TestToday_BreaksStreakAfterMissedDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 5, LongestStreak: 5, TotalDays: 5}),
		testutil.WithLog(testutil.NewTestLog("2026-03-08", testutil.WithProductive(240))),
		testutil.WithLog(testutil.NewTestLog("2026-03-09", testutil.WithProductive(10))),
	))

	_, err := f.tracker.Today(ctx)
	require.NoError(t, err)

	ledger := f.load(t).StreakData
	assert.Zero(t, ledger.CurrentStreak)
	assert.Equal(t, 5, ledger.LongestStreak)
	assert.Equal(t, 5, ledger.TotalDays)
	assert.Equal(t, []string{"Streak Reset"}, f.titles(t))
}

func TestToday_KeepsStreakWhenYesterdayQualified(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 3, LongestStreak: 3, TotalDays: 3}),
		testutil.WithLog(testutil.NewTestLog("2026-03-09", testutil.WithProductive(240))),
	))

	_, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, f.load(t).StreakData.CurrentStreak)
	assert.Empty(t, f.titles(t))
}

func TestToday_BreaksStreakWhenYesterdayHasNoLog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 4, LongestStreak: 4, TotalDays: 4}),
		testutil.WithLog(testutil.NewTestLog("2026-03-08", testutil.WithProductive(240))),
	))

	_, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Zero(t, f.load(t).StreakData.CurrentStreak)
	assert.Equal(t, []string{"Streak Reset"}, f.titles(t))
}

func TestLogSession_UnmetDayResetsStreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yesterday := testutil.NewTestLog("2026-03-09", testutil.WithProductive(240))
	yesterday.StreakCounted = true
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 10, LongestStreak: 10, TotalDays: 10}),
		testutil.WithLog(yesterday),
	))

	res, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 90))
	require.NoError(t, err)
	assert.True(t, res.Outcome.Broken)

	ledger := f.load(t).StreakData
	assert.Zero(t, ledger.CurrentStreak)
	assert.Equal(t, 10, ledger.LongestStreak)
	assert.Equal(t, 10, ledger.TotalDays)
	assert.Contains(t, f.titles(t), "Streak Reset")
}

func TestUseStreakSaver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 3, LongestStreak: 3, TotalDays: 3, StreakSavers: 1}),
		testutil.WithLog(testutil.NewTestLog("2026-03-09", testutil.WithProductive(240))),
	))

	today, err := f.tracker.UseStreakSaver(ctx)
	require.NoError(t, err)
	assert.True(t, today.StreakSaverUsed)

	ledger := f.load(t).StreakData
	assert.Equal(t, 4, ledger.CurrentStreak)
	assert.Zero(t, ledger.StreakSavers)

	_, err = f.tracker.UseStreakSaver(ctx)
	assert.ErrorIs(t, err, streak.ErrStreakSaverAlreadyUsed)
	assert.Equal(t, []string{"Streak Saver Used! 🛡️"}, f.titles(t))
}

func TestUseStreakSaver_NoneLeftChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	_, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	before := f.load(t)

	_, err = f.tracker.UseStreakSaver(ctx)
	assert.ErrorIs(t, err, streak.ErrInsufficientStreakSavers)
	assert.Equal(t, before, f.load(t))
}

func TestUseBacklogSaver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 240)
	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 90))
	require.NoError(t, err)
	f.clock.Advance(24 * time.Hour)

	_, err = f.tracker.UseBacklogSaver(ctx, 30)
	assert.ErrorIs(t, err, streak.ErrInsufficientBacklogSavers)
	today, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	assert.Zero(t, today.ProductiveMinutes)

	_, err = f.tracker.UseBacklogSaver(ctx, 0)
	assert.ErrorIs(t, err, streak.ErrInvalidRedemption)

	applied, err := f.tracker.UseBacklogSaver(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, applied)

	data := f.load(t)
	today = data.DailyLogs["2026-03-11"]
	assert.Equal(t, 10, today.ProductiveMinutes)
	assert.Equal(t, 140, today.BacklogMinutes)
	assert.Equal(t, 10, today.BacklogSaversUsed)
	assert.Equal(t, 5, data.StreakData.BacklogSavers)
	assert.Equal(t, "Backlog Redeemed! ⏰", f.titles(t)[0])
}

func TestUseBacklogSaver_ClampsToDeficit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{BacklogSavers: 100}),
		testutil.WithLog(testutil.NewTestLog("2026-03-10", testutil.WithProductive(220))),
	))

	applied, err := f.tracker.UseBacklogSaver(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, 20, applied)

	data := f.load(t)
	assert.Equal(t, 80, data.StreakData.BacklogSavers)
	assert.Equal(t, 1, data.StreakData.CurrentStreak)

	_, err = f.tracker.UseBacklogSaver(ctx, 10)
	assert.ErrorIs(t, err, ErrNoDeficit)
	assert.Equal(t, 80, f.load(t).StreakData.BacklogSavers)
}

func TestUseFreeTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 240))
	require.NoError(t, err)

	today, err := f.tracker.UseFreeTime(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 35, today.FreeTimeEarned)
	assert.Equal(t, 5, today.FreeTimeRemaining())

	_, err = f.tracker.UseFreeTime(ctx, 10)
	assert.ErrorIs(t, err, streak.ErrInsufficientFreeTime)
}

func TestSetNotesAndDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)

	require.NoError(t, f.tracker.SetNotes(ctx, "  deep work  "))
	day, err := f.tracker.Day(ctx, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "deep work", day.Notes)

	_, err = f.tracker.Day(ctx, "2026-03-01")
	assert.ErrorIs(t, err, ErrDayNotTracked)
	_, err = f.tracker.Day(ctx, "March 1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 25))
	require.NoError(t, err)
	_, err = f.timers.Start(ctx, "Essay", 1)
	require.NoError(t, err)

	require.NoError(t, f.tracker.Reset(ctx))
	assert.Empty(t, testutil.DocumentKeys(t, f.db))

	_, err = f.profiles.Get(ctx)
	assert.ErrorIs(t, err, ErrNotOnboarded)
	assert.Empty(t, f.titles(t))

	f.onboard(t, 60)
	upd, err := f.timers.Current(ctx)
	require.NoError(t, err)
	assert.False(t, upd.State.Running())
}

func TestLogSession_RollsBackWhenFeedWriteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	_, err := f.tracker.Today(ctx)
	require.NoError(t, err)
	before := f.load(t)

	injected := errors.New("disk full")
	log, _ := logtest.NewNullLogger()
	failing := NewStore(&testutil.FailOnNthExecUoW{Inner: testutil.NewTestUoW(f.db), FailOn: 2, Err: injected}, log, WithClock(f.clock.Now))

	_, err = NewTrackerService(failing).LogSession(ctx, testutil.NewTestSession("Essay", 60))
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, before, f.load(t))
	assert.Empty(t, f.titles(t))
}

func TestLogSession_ObserverReportsUseCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)

	log, hook := logtest.NewNullLogger()
	tracker := NewTrackerService(f.store, NewLogUseCaseObserver(log))
	_, err := tracker.LogSession(ctx, testutil.NewTestSession("Essay", 25))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "service_use_case", entry.Message)
	assert.Equal(t, "log-session", entry.Data["use_case"])
	assert.Equal(t, true, entry.Data["success"])
	assert.Equal(t, 25, entry.Data["minutes"])

	_, err = tracker.UseStreakSaver(ctx)
	require.Error(t, err)
	assert.Equal(t, false, hook.LastEntry().Data["success"])
}

func TestLogSession_ConcurrentCallsAllCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 600)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 10))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	today := f.load(t).DailyLogs["2026-03-10"]
	assert.Equal(t, workers*10, today.ProductiveMinutes)
	assert.Len(t, today.Sessions, workers)
}
