package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/streax/internal/cli"
	"github.com/alexanderramin/streax/internal/config"
	"github.com/alexanderramin/streax/internal/db"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/logging"
	"github.com/alexanderramin/streax/internal/notify"
	"github.com/alexanderramin/streax/internal/remind"
	"github.com/alexanderramin/streax/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w\n\n%s", err, config.Usage())
	}
	log := logging.New(cfg.LogLevel)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	store := service.NewStore(uow, log,
		service.WithNotificationLimit(cfg.NotificationLimit),
		service.WithNotifier(notify.LogNotifier{Log: log}),
	)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(log)
	}

	tracker := service.NewTrackerService(store, observer)
	stats := service.NewStatsService(store, observer)
	notifications := service.NewNotificationService(store)

	app := &cli.App{
		Profiles:      service.NewProfileService(store, observer),
		Tracker:       tracker,
		Stats:         stats,
		Backups:       service.NewBackupService(store, observer),
		Notifications: notifications,
		Timer:         service.NewTimerService(store, cfg.TimerMaxAge, observer),

		LogSession: tracker,
		Dashboard:  stats,
		Insights:   stats,
	}

	app.Reminders = func() (*remind.Scheduler, error) {
		return remind.New(onboardedToday{tracker}, notifications, log, remind.Schedule{
			Morning: cfg.MorningReminder,
			Evening: cfg.EveningReminder,
		})
	}

	// Detect interactive terminal for forms and the timer view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// onboardedToday keeps reminders quiet until a profile exists.
type onboardedToday struct {
	tracker service.TrackerService
}

func (o onboardedToday) Today(ctx context.Context) (*domain.DailyLog, error) {
	l, err := o.tracker.Today(ctx)
	if errors.Is(err, service.ErrNotOnboarded) {
		return nil, fmt.Errorf("%w: %w", remind.ErrSkip, err)
	}
	return l, err
}
