package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/remind"
	"github.com/alexanderramin/streax/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles      service.ProfileService
	Tracker       service.TrackerService
	Stats         service.StatsService
	Backups       service.BackupService
	Notifications service.NotificationService
	Timer         service.TimerService

	// Use-case ports. When nil the matching service above is used.
	LogSession app.LogSessionUseCase
	Dashboard  app.DashboardUseCase
	Insights   app.InsightsUseCase

	// Reminders builds the scheduler run by `streax remind`.
	Reminders func() (*remind.Scheduler, error)

	// Now defaults to time.Now. It only affects rendering.
	Now func() time.Time
	// IsInteractive reports whether forms and the timer view can be shown.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "streax" command and registers all
// subcommands against the provided App. Without a subcommand it prints the
// dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "streax",
		Short:         "Pomodoro tracker with daily goals, streaks and savers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyTheme(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app)
		},
	}

	root.AddCommand(
		newOnboardCmd(app),
		newProfileCmd(app),
		newStatusCmd(app),
		newSessionCmd(app),
		newSaverCmd(app),
		newNotesCmd(app),
		newFreeTimeCmd(app),
		newInsightsCmd(app),
		newReportCmd(app),
		newNotifyCmd(app),
		newBackupCmd(app),
		newResetCmd(app),
		newTimerCmd(app),
		newRemindCmd(app),
		newMilestoneCmd(app),
	)

	return root
}

// applyTheme renders with the profile's theme. Before onboarding the dark
// palette stays in place.
func applyTheme(ctx context.Context, app *App) {
	if app.Profiles == nil {
		return
	}
	p, err := app.Profiles.Get(ctx)
	if err != nil {
		formatter.ApplyTheme(domain.ThemeDark)
		return
	}
	formatter.ApplyTheme(p.Theme)
}
