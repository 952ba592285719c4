package notify

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/streak"
)

func SessionLogged(s domain.PomodoroSession) Event {
	task := strings.TrimSpace(s.TaskName)
	if !s.Completed {
		return Event{
			Kind:    domain.NotificationInfo,
			Title:   "Session Logged",
			Message: fmt.Sprintf("Logged %d minutes for: %s", s.DurationMinutes, task),
		}
	}
	return Event{
		Kind:    domain.NotificationSuccess,
		Title:   "Session Complete! 🎉",
		Message: fmt.Sprintf("Completed %d minutes on: %s", s.DurationMinutes, task),
	}
}

func GoalAchieved(productiveMinutes int) Event {
	return Event{
		Kind:    domain.NotificationSuccess,
		Title:   "Daily Goal Achieved! ✨",
		Message: fmt.Sprintf("You've completed %s today!", formatter.FormatMinutes(productiveMinutes)),
	}
}

func StreakSaverUsed() Event {
	return Event{
		Kind:    domain.NotificationSuccess,
		Title:   "Streak Saver Used! 🛡️",
		Message: "Your streak is safe! Keep up the great work tomorrow.",
	}
}

func BacklogRedeemed(minutes int) Event {
	return Event{
		Kind:    domain.NotificationSuccess,
		Title:   "Backlog Redeemed! ⏰",
		Message: fmt.Sprintf("Applied %s to today's progress!", formatter.FormatMinutes(minutes)),
	}
}

// MilestoneReached describes the rewards of a weekly or monthly milestone.
func MilestoneReached(streakDays int, o streak.Outcome) Event {
	var rewards []string
	if o.StreakSaversAwarded > 0 {
		rewards = append(rewards, formatter.Pluralize(o.StreakSaversAwarded, "streak saver", ""))
	}
	if o.BacklogMinutesAwarded > 0 {
		rewards = append(rewards, formatter.FormatMinutes(o.BacklogMinutesAwarded)+" of backlog savers")
	}
	title := "Weekly Milestone! 🔥"
	if o.Monthly {
		title = "Monthly Milestone! 🏆"
	}
	msg := fmt.Sprintf("%d day streak!", streakDays)
	if len(rewards) > 0 {
		msg += " Earned " + strings.Join(rewards, " and ") + "."
	}
	return Event{Kind: domain.NotificationMilestone, Title: title, Message: msg}
}

func StreakBroken(previous int) Event {
	return Event{
		Kind:    domain.NotificationWarning,
		Title:   "Streak Reset",
		Message: fmt.Sprintf("Your %d-day streak ended. Today is a fresh start.", previous),
	}
}

func MorningReminder() Event {
	return Event{
		Kind:    domain.NotificationInfo,
		Title:   "Good Morning! ☀️",
		Message: "Ready to build your streak today? Start a Pomodoro session!",
	}
}

// EveningReminder reports the remaining goal in whole hours, rounded up.
func EveningReminder(remainingMinutes int) Event {
	hours := int(math.Ceil(float64(remainingMinutes) / 60))
	return Event{
		Kind:    domain.NotificationWarning,
		Title:   "Evening Check-in 🌙",
		Message: fmt.Sprintf("You need %d more %s to meet today's goal!", hours, plural(hours, "hour")),
	}
}

// ForOutcome returns the ledger events implied by o.
func ForOutcome(data *domain.AppData, o streak.Outcome) []Event {
	var events []Event
	if o.Milestone() {
		events = append(events, MilestoneReached(data.StreakData.CurrentStreak, o))
	}
	if o.Broken {
		events = append(events, StreakBroken(o.BrokenLength))
	}
	return events
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
