package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Keep notes on the day",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set TEXT...",
			Short: "Replace today's notes",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Tracker.SetNotes(cmd.Context(), strings.Join(args, " ")); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Notes saved.")
				return nil
			},
		},
		newNotesShowCmd(app),
	)

	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDate(date); err != nil {
				return err
			}
			l, err := dayLog(cmd, app, date)
			if err != nil {
				return err
			}
			if l.Notes == "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No notes for "+formatter.HumanDay(l.Date, app.now())+"."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Notes)
			return nil
		},
	}

	dateFlag(cmd.Flags(), &date)

	return cmd
}
