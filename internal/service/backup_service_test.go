package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
	"github.com/alexanderramin/streax/internal/testutil"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 150))
	require.NoError(t, err)
	f.clock.Advance(24 * time.Hour)
	_, err = f.tracker.LogSession(ctx, testutil.NewTestSession("Review", 30, testutil.WithPartial(20)))
	require.NoError(t, err)

	first, err := f.backups.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, first.Version)

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, first))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"version\""))

	require.NoError(t, f.tracker.Reset(ctx))
	parsed, err := ParseBackup(&buf)
	require.NoError(t, err)
	require.NoError(t, f.backups.Restore(ctx, parsed))

	second, err := f.backups.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data)
}

func TestBackup_RestoreClearsTimer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	b, err := f.backups.Export(ctx)
	require.NoError(t, err)

	_, err = f.timers.Start(ctx, "Essay", timer.DefaultPreset)
	require.NoError(t, err)
	require.NoError(t, f.backups.Restore(ctx, b))

	upd, err := f.timers.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, timer.PhaseIdle, upd.State.Phase)
}

func TestBackup_RejectsIncompatibleVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.onboard(t, 120)
	before := f.load(t)

	b := &domain.BackupData{Version: "2.0.0", Data: testutil.NewTestAppData()}
	err := f.backups.Restore(ctx, b)
	assert.ErrorIs(t, err, ErrIncompatibleBackup)
	assert.Equal(t, before, f.load(t))

	_, err = ParseBackup(strings.NewReader(`{"version":"0.9.0","data":{"version":"0.9.0"}}`))
	assert.ErrorIs(t, err, ErrIncompatibleBackup)
}

func TestBackup_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.AppData)
	}{
		{"negative balance", func(d *domain.AppData) { d.StreakData.BacklogSavers = -5 }},
		{"longest below current", func(d *domain.AppData) {
			d.StreakData.CurrentStreak = 4
			d.StreakData.LongestStreak = 2
		}},
		{"bad date key", func(d *domain.AppData) {
			l := testutil.NewTestLog("2026-03-01")
			d.DailyLogs["yesterday"] = l
		}},
		{"key does not match log", func(d *domain.AppData) {
			d.DailyLogs["2026-03-02"] = testutil.NewTestLog("2026-03-01")
		}},
		{"session without task", func(d *domain.AppData) {
			s := testutil.NewTestSession("", 25)
			testutil.WithLog(testutil.NewTestLog("2026-03-01", testutil.WithSessions(s)))(d)
		}},
		{"missing profile name", func(d *domain.AppData) { d.Profile.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testutil.NewTestAppData()
			tt.mutate(data)
			err := CheckBackup(&domain.BackupData{Version: domain.SchemaVersion, Data: data})
			assert.ErrorIs(t, err, ErrInvalidBackup)
		})
	}
}

func TestCheckBackup_ClampsBalanceOverCap(t *testing.T) {
	data := testutil.NewTestAppData(testutil.WithStreak(domain.StreakData{BacklogSavers: 510}))
	require.NoError(t, CheckBackup(&domain.BackupData{Version: domain.SchemaVersion, Data: data}))
	assert.Equal(t, streak.MaxBacklogSavers, data.StreakData.BacklogSavers)
}

func TestBackup_RestoreDoesNotRecountQualifiedToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	data := testutil.NewTestAppData(
		testutil.WithStreak(domain.StreakData{CurrentStreak: 3, LongestStreak: 3, TotalDays: 3}),
		testutil.WithLog(testutil.NewTestLog("2026-03-09", testutil.WithProductive(240))),
		testutil.WithLog(testutil.NewTestLog("2026-03-10", testutil.WithProductive(240))),
	)
	require.NoError(t, f.backups.Restore(ctx, &domain.BackupData{Version: domain.SchemaVersion, Data: data}))

	stored := f.load(t)
	assert.True(t, stored.DailyLogs["2026-03-09"].StreakCounted)
	assert.True(t, stored.DailyLogs["2026-03-10"].StreakCounted)

	_, err := f.tracker.LogSession(ctx, testutil.NewTestSession("Essay", 25))
	require.NoError(t, err)
	ledger := f.load(t).StreakData
	assert.Equal(t, 3, ledger.CurrentStreak)
	assert.Equal(t, 3, ledger.TotalDays)
}

func TestParseBackup(t *testing.T) {
	_, err := ParseBackup(strings.NewReader("not json"))
	assert.ErrorIs(t, err, ErrInvalidBackup)

	_, err = ParseBackup(strings.NewReader(`{"version":"1.0.0"}`))
	assert.ErrorIs(t, err, ErrInvalidBackup)

	b, err := ParseBackup(strings.NewReader(`{
		"version": "1.0.0",
		"exportDate": "2026-03-10T09:00:00Z",
		"extra": true,
		"data": {
			"profile": {"name": "Ada", "dailyCommitmentMinutes": 240},
			"streakData": {"currentStreak": 2, "longestStreak": 9}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, b.Data.Version)
	assert.NotNil(t, b.Data.DailyLogs)
	assert.Equal(t, 9, b.Data.StreakData.LongestStreak)
}
