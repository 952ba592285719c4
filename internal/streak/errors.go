package streak

import "errors"

var (
	// ErrInsufficientStreakSavers indicates no streak saver is left to spend.
	ErrInsufficientStreakSavers = errors.New("no streak savers available")

	// ErrStreakSaverAlreadyUsed indicates today already consumed its one streak saver.
	ErrStreakSaverAlreadyUsed = errors.New("streak saver already used today")

	// ErrInsufficientBacklogSavers indicates the backlog-saver balance is
	// smaller than the requested redemption.
	ErrInsufficientBacklogSavers = errors.New("not enough backlog savers")

	// ErrInvalidRedemption indicates a non-positive redemption amount.
	ErrInvalidRedemption = errors.New("redemption must be a positive number of minutes")
)

// ErrInsufficientFreeTime indicates a free-time spend larger than what is left today.
var ErrInsufficientFreeTime = errors.New("not enough free time earned today")
