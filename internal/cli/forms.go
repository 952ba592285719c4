package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// streaxHuhTheme returns a huh theme using the formatter palette.
func streaxHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// onboardInput collects the onboarding answers as strings for huh.
type onboardInput struct {
	Name  string
	Role  string
	Goal  string
	Hours string
}

func onboardForm(in *onboardInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to Streax").
				Description("Set a daily focus commitment. Every day you meet it grows your streak."),
			huh.NewInput().
				Title("Your name").
				Value(&in.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Role").
				Placeholder("Student, engineer, writer...").
				Value(&in.Role),
			huh.NewText().
				Title("Long-term goal").
				Value(&in.Goal),
			huh.NewInput().
				Title("Daily commitment (hours)").
				Placeholder("4").
				Value(&in.Hours).
				Validate(validateHours),
		),
	).WithTheme(streaxHuhTheme()).WithShowHelp(false)
}

// timerStartInput is the task and preset asked for before the timer view.
type timerStartInput struct {
	Task   string
	Preset int
}

func timerStartForm(in *timerStartInput) *huh.Form {
	options := make([]huh.Option[int], 0, len(timer.Presets()))
	for i, p := range timer.Presets() {
		options = append(options, huh.NewOption(p.Name, i))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you working on?").
				Value(&in.Task).
				Validate(validateRequired),
			huh.NewSelect[int]().
				Title("Preset").
				Options(options...).
				Value(&in.Preset),
		),
	).WithTheme(streaxHuhTheme()).WithShowHelp(false)
}

func confirmForm(title, description string, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(ok),
		),
	).WithTheme(streaxHuhTheme()).WithShowHelp(false)
}

// confirm asks before a destructive or spending action. --yes skips the
// prompt; without a terminal the action proceeds only when required is
// false.
func (a *App) confirm(yes, required bool, title, description string) (bool, error) {
	if yes {
		return true, nil
	}
	if !a.interactive() {
		if required {
			return false, errors.New("not a terminal: pass --yes to confirm")
		}
		return true, nil
	}
	var ok bool
	if err := confirmForm(title, description, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateHours(s string) error {
	_, err := parseHours(s)
	return err
}

// parseHours converts a commitment in hours to whole minutes.
func parseHours(s string) (int, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || h <= 0 || h > 24 {
		return 0, fmt.Errorf("enter hours between 0 and 24")
	}
	return int(h*60 + 0.5), nil
}
