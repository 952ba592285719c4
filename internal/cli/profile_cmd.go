package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var in onboardInput
	var hours float64

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your profile and daily commitment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours > 0 {
				in.Hours = strconv.FormatFloat(hours, 'f', -1, 64)
			}
			if (strings.TrimSpace(in.Name) == "" || in.Hours == "") && app.interactive() {
				if err := onboardForm(&in).Run(); err != nil {
					return err
				}
			}
			if strings.TrimSpace(in.Name) == "" {
				return fmt.Errorf("--name is required")
			}
			if in.Hours == "" {
				return fmt.Errorf("--hours is required")
			}
			commitment, err := parseHours(in.Hours)
			if err != nil {
				return fmt.Errorf("--hours: %w", err)
			}

			p, err := app.Profiles.Onboard(cmd.Context(), domain.UserProfile{
				Name:                   in.Name,
				Role:                   in.Role,
				LongTermGoal:           in.Goal,
				DailyCommitmentMinutes: commitment,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Welcome, %s! Your daily goal is %s.\n", p.Name, formatter.FormatMinutes(p.DailyCommitmentMinutes))
			fmt.Fprintln(out, formatter.Dim("Start a session with: streax timer start --task \"...\""))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&in.Role, "role", "", "Your role")
	cmd.Flags().StringVar(&in.Goal, "goal", "", "Long-term goal")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Daily commitment in hours")

	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, role, goal, theme string
	var hours float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long:  "Update profile fields. A new daily commitment applies from tomorrow; today's goal is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("role") {
				p.Role = role
			}
			if flags.Changed("goal") {
				p.LongTermGoal = goal
			}
			if flags.Changed("theme") {
				p.Theme = domain.Theme(strings.ToLower(theme))
			}
			if flags.Changed("hours") {
				minutes, err := parseHours(strconv.FormatFloat(hours, 'f', -1, 64))
				if err != nil {
					return fmt.Errorf("--hours: %w", err)
				}
				p.DailyCommitmentMinutes = minutes
			}

			updated, err := app.Profiles.Update(ctx, *p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatProfile(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&role, "role", "", "Your role")
	cmd.Flags().StringVar(&goal, "goal", "", "Long-term goal")
	cmd.Flags().StringVar(&theme, "theme", "", "dark or light")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Daily commitment in hours (applies from tomorrow)")

	return cmd
}

func formatProfile(p *domain.UserProfile) string {
	rows := [][]string{
		{"Name", p.Name},
		{"Role", p.Role},
		{"Goal", p.LongTermGoal},
		{"Daily commitment", formatter.FormatMinutes(p.DailyCommitmentMinutes)},
		{"Theme", string(p.Theme)},
		{"Member since", p.CreatedAt.Local().Format("Jan 2, 2006")},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(formatter.Dim(fmt.Sprintf("%-18s", r[0])) + " " + r[1] + "\n")
	}
	return formatter.RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}
