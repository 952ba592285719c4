package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the morning and evening reminders until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Reminders == nil {
				return errors.New("reminders are not configured")
			}
			s, err := app.Reminders()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return s.Run(ctx, func(morning, evening time.Time) {
				now := app.now()
				at := func(t time.Time) string {
					return formatter.HumanDateFrom(t, now) + " at " + t.Local().Format("15:04")
				}
				fmt.Fprintf(out, "Reminders running. Next morning check-in: %s. Evening check-in: %s.\n", at(morning), at(evening))
				fmt.Fprintln(out, formatter.Dim("Press Ctrl+C to stop."))
			})
		},
	}
}
