package streak

import "github.com/alexanderramin/streax/internal/domain"

// RewardTier maps a productive-hours threshold to the total free time
// unlocked once it is reached. Cumulative already includes lower tiers.
type RewardTier struct {
	Hours           float64
	FreeTimeMinutes int
	Cumulative      int
}

var rewardTiers = []RewardTier{
	{Hours: 2, FreeTimeMinutes: 15, Cumulative: 15},
	{Hours: 4, FreeTimeMinutes: 20, Cumulative: 35},
	{Hours: 6, FreeTimeMinutes: 30, Cumulative: 65},
	{Hours: 8, FreeTimeMinutes: 40, Cumulative: 105},
}

// RewardTiers returns a copy of the reward table, ascending by threshold.
func RewardTiers() []RewardTier {
	out := make([]RewardTier, len(rewardTiers))
	copy(out, rewardTiers)
	return out
}

// CalculateFreeTimeRewards returns the free time earned for a day with the
// given productive minutes: the cumulative value of the highest tier met.
func CalculateFreeTimeRewards(productiveMinutes int) int {
	hours := float64(productiveMinutes) / 60
	total := 0
	for _, tier := range rewardTiers {
		if hours >= tier.Hours {
			total = tier.Cumulative
		}
	}
	return total
}

// NextRewardTier returns the first tier not yet reached, or false when the
// top tier is already unlocked.
func NextRewardTier(productiveMinutes int) (RewardTier, bool) {
	hours := float64(productiveMinutes) / 60
	for _, tier := range rewardTiers {
		if hours < tier.Hours {
			return tier, true
		}
	}
	return RewardTier{}, false
}

// SpendFreeTime records minutes of earned free time as used.
func SpendFreeTime(today *domain.DailyLog, minutes int) error {
	if minutes <= 0 {
		return ErrInvalidRedemption
	}
	if today.FreeTimeRemaining() < minutes {
		return ErrInsufficientFreeTime
	}
	today.FreeTimeUsed += minutes
	return nil
}
