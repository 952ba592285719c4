package streak

import (
	"fmt"

	"github.com/alexanderramin/streax/internal/domain"
)

// UseStreakSaver spends one streak saver so today qualifies regardless of
// minutes. On error nothing is modified.
func UseStreakSaver(data *domain.AppData, today *domain.DailyLog) (Outcome, error) {
	if today.StreakSaverUsed {
		return Outcome{}, ErrStreakSaverAlreadyUsed
	}
	if data.StreakData.StreakSavers <= 0 {
		return Outcome{}, ErrInsufficientStreakSavers
	}

	data.StreakData.StreakSavers--
	today.StreakSaverUsed = true
	return UpdateStreakStatus(data, today), nil
}

// ClampBacklogRedemption bounds a requested redemption by today's deficit
// and the available balance.
func ClampBacklogRedemption(requested int, today *domain.DailyLog, balance int) int {
	n := min(requested, today.Deficit(), balance)
	if n < 0 {
		return 0
	}
	return n
}

// UseBacklogSaver converts minutes of backlog-saver balance into productive
// minutes for today. On error nothing is modified.
func UseBacklogSaver(data *domain.AppData, today *domain.DailyLog, minutes int) (Outcome, error) {
	if minutes <= 0 {
		return Outcome{}, ErrInvalidRedemption
	}
	if data.StreakData.BacklogSavers < minutes {
		return Outcome{}, fmt.Errorf("redeeming %d min with %d available: %w",
			minutes, data.StreakData.BacklogSavers, ErrInsufficientBacklogSavers)
	}

	data.StreakData.BacklogSavers -= minutes
	today.BacklogSaversUsed += minutes
	today.ProductiveMinutes += minutes
	today.BacklogMinutes = max(0, today.BacklogMinutes-minutes)
	today.FreeTimeEarned = CalculateFreeTimeRewards(today.ProductiveMinutes)
	return UpdateStreakStatus(data, today), nil
}
