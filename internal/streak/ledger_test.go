package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStreakStatus_WeeklyMilestone(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 6
	data.StreakData.LongestStreak = 6
	data.StreakData.TotalDays = 6
	today := newLog("2025-03-07", 60, 60)

	out := UpdateStreakStatus(data, today)

	assert.True(t, out.Counted)
	assert.True(t, out.Weekly)
	assert.Equal(t, 7, data.StreakData.CurrentStreak)
	assert.Equal(t, 7, data.StreakData.LongestStreak)
	assert.Equal(t, 7, data.StreakData.TotalDays)
	assert.Equal(t, 1, data.StreakData.StreakSavers)
	assert.Equal(t, "2025-03-07", data.StreakData.LastStreakSaverEarned)
	assert.True(t, today.StreakCounted)
}

func TestUpdateStreakStatus_Break(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 10
	data.StreakData.LongestStreak = 12
	data.StreakData.TotalDays = 40
	yesterday := newLog("2025-03-06", 60, 60)
	yesterday.StreakCounted = true
	data.DailyLogs[yesterday.Date] = yesterday
	today := newLog("2025-03-07", 30, 60)
	data.DailyLogs[today.Date] = today

	out := UpdateStreakStatus(data, today)

	assert.True(t, out.Broken)
	assert.Equal(t, 10, out.BrokenLength)
	assert.Zero(t, data.StreakData.CurrentStreak)
	assert.Equal(t, 12, data.StreakData.LongestStreak)
	assert.Equal(t, 40, data.StreakData.TotalDays)
}

func TestUpdateStreakStatus_IdempotentPerDay(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 6
	today := newLog("2025-03-07", 90, 60)

	first := UpdateStreakStatus(data, today)
	second := UpdateStreakStatus(data, today)

	assert.True(t, first.Counted)
	assert.False(t, second.Counted)
	assert.True(t, second.AlreadyCounted)
	assert.Equal(t, 7, data.StreakData.CurrentStreak)
	assert.Equal(t, 1, data.StreakData.TotalDays)
	assert.Equal(t, 1, data.StreakData.StreakSavers, "weekly saver awarded once")
}

func TestUpdateStreakStatus_MonthlyMilestone(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 29
	data.StreakData.BacklogSavers = 100
	today := newLog("2025-03-30", 60, 60)

	out := UpdateStreakStatus(data, today)

	require.True(t, out.Monthly)
	assert.False(t, out.Weekly, "30 is not a multiple of 7")
	assert.Equal(t, 30, data.StreakData.CurrentStreak)
	assert.Equal(t, 160, data.StreakData.BacklogSavers)
	assert.Equal(t, 2, data.StreakData.StreakSavers)
	assert.Equal(t, 60, out.BacklogMinutesAwarded)
}

func TestUpdateStreakStatus_MonthlyBonusRespectsCap(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 209 // 210 is a multiple of both 7 and 30
	data.StreakData.BacklogSavers = 420
	today := newLog("2025-03-30", 60, 60)

	out := UpdateStreakStatus(data, today)

	assert.True(t, out.Weekly)
	assert.True(t, out.Monthly)
	assert.Equal(t, MaxBacklogSavers, data.StreakData.BacklogSavers)
	assert.Equal(t, 30, out.BacklogMinutesAwarded)
	assert.Equal(t, 3, data.StreakData.StreakSavers)
	assert.Equal(t, 3, out.StreakSaversAwarded)
}

func TestUpdateStreakStatus_StreakSaverQualifies(t *testing.T) {
	data := newData(60)
	data.StreakData.CurrentStreak = 3
	today := newLog("2025-03-07", 0, 60)
	today.StreakSaverUsed = true

	out := UpdateStreakStatus(data, today)

	assert.True(t, out.Counted)
	assert.Equal(t, 4, data.StreakData.CurrentStreak)
}

func TestUpdateStreakStatus_BreakFromZeroIsNotReported(t *testing.T) {
	data := newData(60)
	out := UpdateStreakStatus(data, newLog("2025-03-07", 0, 60))
	assert.False(t, out.Broken)
	assert.False(t, out.Milestone())
}

func TestGoalProgress(t *testing.T) {
	assert.Equal(t, 50.0, GoalProgress(30, 60))
	assert.Equal(t, 100.0, GoalProgress(90, 60))
	assert.Equal(t, 100.0, GoalProgress(0, 0))
}

func TestUpdateStreakStatus_UnmetDayResetsEvenAfterQualifyingYesterday(t *testing.T) {
	data := newData(240)
	data.StreakData.CurrentStreak = 10
	data.StreakData.LongestStreak = 10
	data.StreakData.TotalDays = 10
	yesterday := newLog("2025-03-06", 240, 240)
	yesterday.StreakCounted = true
	data.DailyLogs[yesterday.Date] = yesterday
	today := newLog("2025-03-07", 90, 240)
	data.DailyLogs[today.Date] = today

	out := UpdateStreakStatus(data, today)

	assert.True(t, out.Broken)
	assert.Equal(t, 10, out.BrokenLength)
	assert.Zero(t, data.StreakData.CurrentStreak)
	assert.Equal(t, 10, data.StreakData.LongestStreak)
	assert.Equal(t, 10, data.StreakData.TotalDays)
}

func TestRecordSession_ShortDayRestartsStreak(t *testing.T) {
	data := newData(25)
	data.StreakData.CurrentStreak = 5
	data.StreakData.LongestStreak = 5
	data.StreakData.TotalDays = 5

	day1 := GetOrCreateLog(data, "2025-03-05")
	out, err := RecordSession(data, day1, session("Essay", 25))
	require.NoError(t, err)
	require.True(t, out.Counted)
	require.Equal(t, 6, data.StreakData.CurrentStreak)

	day2 := GetOrCreateLog(data, "2025-03-06")
	out, err = RecordSession(data, day2, session("Essay", 10))
	require.NoError(t, err)
	assert.True(t, out.Broken)
	assert.Zero(t, data.StreakData.CurrentStreak)

	day3 := GetOrCreateLog(data, "2025-03-07")
	out, err = RecordSession(data, day3, session("Essay", 25))
	require.NoError(t, err)
	assert.True(t, out.Counted)
	assert.Equal(t, 1, data.StreakData.CurrentStreak)
	assert.Equal(t, 6, data.StreakData.LongestStreak)
}

func TestCloseDay(t *testing.T) {
	t.Run("qualifying day keeps the streak", func(t *testing.T) {
		data := newData(60)
		data.StreakData.CurrentStreak = 5
		yesterday := newLog("2025-03-06", 60, 60)
		yesterday.StreakCounted = true
		data.DailyLogs[yesterday.Date] = yesterday

		out := CloseDay(data, "2025-03-06")
		assert.Equal(t, Outcome{}, out)
		assert.Equal(t, 5, data.StreakData.CurrentStreak)
	})

	t.Run("unmet day breaks the streak", func(t *testing.T) {
		data := newData(60)
		data.StreakData.CurrentStreak = 5
		data.DailyLogs["2025-03-06"] = newLog("2025-03-06", 10, 60)

		out := CloseDay(data, "2025-03-06")
		assert.True(t, out.Broken)
		assert.Equal(t, 5, out.BrokenLength)
		assert.Zero(t, data.StreakData.CurrentStreak)
	})

	t.Run("missing day breaks the streak", func(t *testing.T) {
		data := newData(60)
		data.StreakData.CurrentStreak = 3
		data.StreakData.TotalDays = 8

		out := CloseDay(data, "2025-03-06")
		assert.True(t, out.Broken)
		assert.Zero(t, data.StreakData.CurrentStreak)
		assert.Equal(t, 8, data.StreakData.TotalDays)
	})

	t.Run("nothing to break", func(t *testing.T) {
		data := newData(60)
		assert.False(t, CloseDay(data, "2025-03-06").Broken)
	})
}
