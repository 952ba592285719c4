package cli

import (
	"fmt"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notify",
		Aliases: []string{"notifications"},
		Short:   "Read the notification feed",
	}

	cmd.AddCommand(
		newNotifyListCmd(app),
		&cobra.Command{
			Use:   "read ID",
			Short: "Mark one notification as read (ID prefix accepted)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Notifications.MarkRead(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Marked as read.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "read-all",
			Short: "Mark every notification as read",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Notifications.MarkAllRead(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All notifications marked as read.")
				return nil
			},
		},
	)

	return cmd
}

func newNotifyListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			feed, err := app.Notifications.List(ctx, limit)
			if err != nil {
				return err
			}
			unread, err := app.Notifications.UnreadCount(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatNotifications(feed, app.now()))
			if unread > 0 {
				fmt.Fprintln(out, formatter.Dim(formatter.Pluralize(unread, "unread notification", "")+" · streax notify read-all"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of notifications to show (0 for all)")

	return cmd
}
