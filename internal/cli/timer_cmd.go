package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/service"
	"github.com/alexanderramin/streax/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	var task string
	var preset int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the pomodoro timer",
		Long: "Without a subcommand, opens the live timer view (starting a session first when idle).\n" +
			"The timer is persisted, so it keeps running between invocations.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			upd, err := app.Timer.Current(ctx)
			if err != nil {
				return err
			}
			if !app.interactive() {
				writeTimerUpdate(cmd.OutOrStdout(), upd)
				return nil
			}

			if upd.State.Phase == timer.PhaseIdle {
				in := timerStartInput{Task: task, Preset: preset}
				if in.Task == "" {
					if err := timerStartForm(&in).Run(); err != nil {
						return err
					}
				}
				if _, err := app.Timer.Start(ctx, in.Task, in.Preset); err != nil {
					return err
				}
			}
			return runTimerView(ctx, app.Timer)
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task to start when the timer is idle")
	presetFlag(cmd.Flags(), &preset)

	cmd.AddCommand(
		newTimerStartCmd(app),
		newTimerStepCmd(app, "pause", "Pause the running phase"),
		newTimerStepCmd(app, "resume", "Resume a paused phase"),
		newTimerStepCmd(app, "stop", "Stop the timer and log the focus done so far"),
		newTimerStepCmd(app, "show", "Show the timer, applying any finished phases"),
	)

	return cmd
}

func runTimerView(ctx context.Context, timers service.TimerService) error {
	p := tea.NewProgram(newTimerModel(ctx, timers), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newTimerStartCmd(app *App) *cobra.Command {
	var task string
	var preset int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			upd, err := app.Timer.Start(cmd.Context(), task, preset)
			if err != nil {
				return err
			}
			writeTimerUpdate(cmd.OutOrStdout(), upd)
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "What you are working on")
	presetFlag(cmd.Flags(), &preset)
	_ = cmd.MarkFlagRequired("task")

	return cmd
}

// newTimerStepCmd wraps a timer operation that takes no arguments. The
// operation is looked up at run time since app.Timer may be nil while the
// command tree is built.
func newTimerStepCmd(app *App, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := timerStep(app.Timer, use)
			upd, err := op(cmd.Context())
			if err != nil {
				return err
			}
			if use == "stop" && upd.Logged == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Stopped under a minute, nothing logged."))
			}
			writeTimerUpdate(cmd.OutOrStdout(), upd)
			return nil
		},
	}
}

func timerStep(t service.TimerService, name string) func(context.Context) (*service.TimerUpdate, error) {
	switch name {
	case "pause":
		return t.Pause
	case "resume":
		return t.Resume
	case "stop":
		return t.Stop
	default:
		return t.Tick
	}
}

func writeTimerUpdate(w io.Writer, upd *service.TimerUpdate) {
	tr := upd.Transition
	if tr.FocusCompleted {
		fmt.Fprintln(w, formatter.StyleGreen.Render("Focus complete! Break time."))
	}
	if upd.Logged != nil {
		s := tr.Session
		fmt.Fprintf(w, "Logged %s for: %s\n", formatter.FormatMinutes(s.DurationMinutes), s.TaskName)
		writeLogResult(w, upd.Logged)
	}
	fmt.Fprint(w, formatter.FormatTimer(upd.State))
}
