package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/contract"
	"github.com/alexanderramin/streax/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// insightsFlags are shared by `insights` and `report`.
type insightsFlags struct {
	timeframe contract.Timeframe
	date      string
	from      string
	to        string
}

func (f *insightsFlags) register(fs *pflag.FlagSet, def contract.Timeframe) {
	timeframeFlag(fs, &f.timeframe, def)
	fs.StringVar(&f.date, "date", "", "Day for --timeframe day (YYYY-MM-DD)")
	fs.StringVar(&f.from, "from", "", "Start of a custom range (YYYY-MM-DD)")
	fs.StringVar(&f.to, "to", "", "End of a custom range (YYYY-MM-DD)")
}

func (f *insightsFlags) request(fs *pflag.FlagSet) contract.InsightsRequest {
	tf := f.timeframe
	// A range without an explicit timeframe means custom.
	if !fs.Changed("timeframe") && (f.from != "" || f.to != "") {
		tf = contract.TimeframeCustom
	}
	req := contract.NewInsightsRequest(tf)
	req.Date = f.date
	req.From = f.from
	req.To = f.to
	return req
}

func (f *insightsFlags) fetch(cmd *cobra.Command, app *App) (*contract.InsightsResponse, error) {
	insights := app.insightsUseCase()
	if insights == nil {
		return nil, fmt.Errorf("insights use case is not configured")
	}
	return insights.Insights(cmd.Context(), f.request(cmd.Flags()))
}

func newInsightsCmd(app *App) *cobra.Command {
	var flags insightsFlags

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarise focus time over a timeframe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := flags.fetch(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInsights(resp, app.now()))
			return nil
		},
	}

	flags.register(cmd.Flags(), contract.TimeframeWeek)

	return cmd
}

func newReportCmd(app *App) *cobra.Command {
	var flags insightsFlags
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an insights report as PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			profile, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}
			resp, err := flags.fetch(cmd, app)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating report: %w", err)
			}
			if err := report.WritePDF(f, resp, *profile, app.now()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report for %s written to %s\n", resp.Timeframe, out)
			return nil
		},
	}

	flags.register(cmd.Flags(), contract.TimeframeWeek)
	cmd.Flags().StringVarP(&out, "out", "o", "", "PDF file to write")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
