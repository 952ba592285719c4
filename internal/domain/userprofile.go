package domain

import "time"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// UserProfile is captured once at onboarding. DailyCommitmentMinutes is the
// baseline goal every new day starts from.
type UserProfile struct {
	Name                   string    `json:"name" validate:"required,max=80"`
	Role                   string    `json:"role" validate:"max=80"`
	LongTermGoal           string    `json:"longTermGoal" validate:"max=500"`
	DailyCommitmentMinutes int       `json:"dailyCommitmentMinutes" validate:"gt=0,lte=1440"`
	CreatedAt              time.Time `json:"createdAt"`
	Theme                  Theme     `json:"theme,omitempty" validate:"omitempty,oneof=dark light"`
}
