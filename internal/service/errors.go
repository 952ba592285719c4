package service

import "errors"

var (
	// ErrNotOnboarded is returned by operations that need a profile when
	// none has been created yet.
	ErrNotOnboarded = errors.New("no profile yet: run `streax onboard` first")

	ErrAlreadyOnboarded = errors.New("profile already exists: run `streax reset` to start over")

	// ErrIncompatibleBackup rejects backups written with another schema version.
	ErrIncompatibleBackup = errors.New("incompatible backup version")

	ErrInvalidBackup = errors.New("invalid backup")

	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDeficit is returned when a backlog redemption has nothing to cover.
	ErrNoDeficit = errors.New("today's goal is already met")

	ErrDayNotTracked = errors.New("no log for that day")

	ErrNotificationNotFound = errors.New("notification not found")
)
