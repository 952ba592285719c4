package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/contract"
	"github.com/alexanderramin/streax/internal/streak"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's progress and your streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, app)
		},
	}
}

func runStatus(cmd *cobra.Command, app *App) error {
	dashboard := app.dashboardUseCase()
	if dashboard == nil {
		return fmt.Errorf("dashboard use case is not configured")
	}
	resp, err := dashboard.Dashboard(cmd.Context(), contract.NewDashboardRequest())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
	return nil
}

func newMilestoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "milestone",
		Short: "Show the next streak milestone and today's reward tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.dashboardUseCase().Dashboard(cmd.Context(), contract.NewDashboardRequest())
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(formatter.FormatStreakLine(resp) + "\n")
			b.WriteString(formatter.FormatMilestone(resp.NextMilestone) + "\n")
			b.WriteString(formatter.Dim(fmt.Sprintf("Weekly every %d days: +1 streak saver. Monthly every %d days: +%d streak savers and %s of backlog savers.",
				streak.WeeklyMilestoneDays, streak.MonthlyMilestoneDays,
				1+streak.MonthlyStreakSaverBonus, formatter.FormatMinutes(streak.MonthlyBacklogBonus))) + "\n\n")

			rows := make([][]string, 0, 4)
			for _, tier := range streak.RewardTiers() {
				mark := ""
				if float64(resp.Today.ProductiveMinutes) >= tier.Hours*60 {
					mark = formatter.StyleGreen.Render("✔")
				}
				rows = append(rows, []string{
					formatter.FormatHours(int(tier.Hours * 60)),
					"+" + formatter.FormatMinutes(tier.FreeTimeMinutes),
					formatter.FormatMinutes(tier.Cumulative),
					mark,
				})
			}
			b.WriteString(formatter.Header("Free time rewards") + "\n")
			b.WriteString(formatter.RenderTable([]string{"AT", "REWARD", "TOTAL", ""}, rows))

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Milestones", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}
