package cli

import (
	"fmt"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSaverCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saver",
		Short: "Spend streak or backlog savers",
	}

	cmd.AddCommand(
		newSaverStreakCmd(app),
		newSaverBacklogCmd(app),
	)

	return cmd
}

func newSaverStreakCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Use a streak saver to keep today's streak alive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.confirm(yes, false, "Use a streak saver?", "Today will count toward your streak without meeting the goal.")
			if err != nil || !ok {
				return err
			}
			if _, err := app.Tracker.UseStreakSaver(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("🛡 Streak saver used. Your streak is safe!"))
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}

func newSaverBacklogCmd(app *App) *cobra.Command {
	var minutes int
	var yes bool

	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Apply backlog saver minutes to today's progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.confirm(yes, false, fmt.Sprintf("Redeem %s of backlog savers?", formatter.FormatMinutes(minutes)),
				"The minutes count as productive time today, up to the remaining goal.")
			if err != nil || !ok {
				return err
			}
			applied, err := app.Tracker.UseBacklogSaver(cmd.Context(), minutes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Applied %s to today's progress.\n", formatter.FormatMinutes(applied))
			if applied < minutes {
				fmt.Fprintln(out, formatter.Dim("Capped at today's remaining goal."))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes to redeem")
	yesFlag(cmd.Flags(), &yes)
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newFreeTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freetime",
		Short: "Spend free time earned today",
	}

	var minutes int
	use := &cobra.Command{
		Use:   "use",
		Short: "Record earned free time as used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Tracker.UseFreeTime(cmd.Context(), minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enjoy %s! %s of free time left today.\n",
				formatter.FormatMinutes(minutes), formatter.FormatMinutes(l.FreeTimeRemaining()))
			return nil
		},
	}
	use.Flags().IntVar(&minutes, "minutes", 0, "Minutes to spend")
	_ = use.MarkFlagRequired("minutes")

	cmd.AddCommand(use)
	return cmd
}
