package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/service"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all tracking data",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupRestoreCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup to a file or stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Backups.Export(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return service.WriteBackup(cmd.OutOrStdout(), b)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating backup: %w", err)
			}
			if err := service.WriteBackup(f, b); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup of %s written to %s\n",
				formatter.Pluralize(len(b.Data.DailyLogs), "day", ""), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write (default stdout)")

	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace all data with a backup (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening backup: %w", err)
				}
				defer f.Close()
				r = f
			}

			b, err := service.ParseBackup(r)
			if err != nil {
				return err
			}
			ok, err := app.confirm(yes, true, "Restore this backup?",
				fmt.Sprintf("All current data is replaced by %s of history for %s.",
					formatter.Pluralize(len(b.Data.DailyLogs), "day", ""), b.Data.Profile.Name))
			if err != nil || !ok {
				return err
			}
			if err := app.Backups.Restore(cmd.Context(), b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s.\n", b.ExportDate.Local().Format("Jan 2, 2006 15:04"))
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every profile, log, timer and notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.confirm(yes, true, "Delete all data?", "This cannot be undone. Export a backup first if unsure.")
			if err != nil || !ok {
				return err
			}
			if err := app.Tracker.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted. Run `streax onboard` to start again.")
			return nil
		},
	}

	yesFlag(cmd.Flags(), &yes)

	return cmd
}
