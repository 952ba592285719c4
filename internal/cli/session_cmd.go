package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/timer"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and list pomodoro sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var task, notes string
	var minutes, preset int
	var partial bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a finished focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes <= 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			p, err := timer.PresetAt(preset)
			if err != nil {
				return err
			}

			end := app.now()
			s := domain.PomodoroSession{
				TaskName:        task,
				StartTime:       end.Add(-time.Duration(minutes) * time.Minute).UTC(),
				EndTime:         end.UTC(),
				DurationMinutes: minutes,
				Preset:          p.Name,
				Completed:       !partial,
				Notes:           notes,
			}
			if partial {
				actual := minutes
				s.ActualFocusMinutes = &actual
			}

			logSession := app.logSessionUseCase()
			if logSession == nil {
				return fmt.Errorf("log-session use case is not configured")
			}
			res, err := logSession.LogSession(cmd.Context(), s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged %s for: %s\n", formatter.FormatMinutes(minutes), strings.TrimSpace(task))
			writeLogResult(out, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "What you worked on")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Focus minutes")
	presetFlag(cmd.Flags(), &preset)
	cmd.Flags().BoolVar(&partial, "partial", false, "Session was stopped before the timer finished")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

// writeLogResult prints today's progress and any ledger change caused by
// logging a session.
func writeLogResult(w io.Writer, res *app.LogSessionResult) {
	if res == nil || res.Log == nil {
		return
	}
	l := res.Log
	pct := 1.0
	if l.GoalMinutes > 0 {
		pct = float64(l.ProductiveMinutes) / float64(l.GoalMinutes)
	}
	fmt.Fprintf(w, "Today: %s / %s  %s\n",
		formatter.FormatMinutes(l.ProductiveMinutes), formatter.FormatMinutes(l.GoalMinutes),
		formatter.RenderProgress(pct, 20))

	o := res.Outcome
	if o.Counted {
		fmt.Fprintln(w, formatter.StyleGreen.Render("✨ Goal met! Today counts toward your streak."))
	}
	if o.Milestone() {
		fmt.Fprintf(w, "%s +%s",
			formatter.StylePurple.Render("★ Milestone reached:"),
			formatter.Pluralize(o.StreakSaversAwarded, "streak saver", ""))
		if o.BacklogMinutesAwarded > 0 {
			fmt.Fprintf(w, ", +%s backlog savers", formatter.FormatMinutes(o.BacklogMinutesAwarded))
		}
		fmt.Fprintln(w)
	}
	if o.Broken {
		fmt.Fprintln(w, formatter.StyleYellow.Render(fmt.Sprintf("Your %d-day streak was reset.", o.BrokenLength)))
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDate(date); err != nil {
				return err
			}
			l, err := dayLog(cmd, app, date)
			if err != nil {
				return err
			}
			title := "Sessions · " + formatter.HumanDay(l.Date, app.now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(title, strings.TrimRight(formatter.FormatSessions(l), "\n")))
			return nil
		},
	}

	dateFlag(cmd.Flags(), &date)

	return cmd
}

// dayLog returns today's log, or the stored log for date.
func dayLog(cmd *cobra.Command, app *App, date string) (*domain.DailyLog, error) {
	if date == "" {
		return app.Tracker.Today(cmd.Context())
	}
	return app.Tracker.Day(cmd.Context(), date)
}
