package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/contract"
)

const insightsBarWidth = 10

// FormatInsights renders the summary block and one row per tracked day.
func FormatInsights(resp *contract.InsightsResponse, now time.Time) string {
	var b strings.Builder
	sum := resp.Summary

	title := "Insights · " + string(resp.Timeframe)
	if sum.From != "" {
		span := sum.From
		if sum.To != sum.From {
			span += " → " + sum.To
		}
		b.WriteString(Dim(span) + "\n\n")
	}

	if sum.DaysTracked == 0 {
		b.WriteString(Dim("No tracked days in this range."))
		return RenderBox(title, b.String())
	}

	b.WriteString(fmt.Sprintf("Total focus    %s %s\n", Bold(FormatMinutes(sum.TotalMinutes)), Dim("("+FormatHours(sum.TotalMinutes)+")")))
	b.WriteString(fmt.Sprintf("Sessions       %s %s\n", Bold(fmt.Sprint(sum.TotalSessions)), Dim(fmt.Sprintf("(%d completed)", sum.CompletedSessions))))
	b.WriteString(fmt.Sprintf("Daily average  %s\n", Bold(FormatMinutes(int(sum.AverageMinutes+0.5)))))
	b.WriteString(fmt.Sprintf("Goals met      %s %s\n",
		Bold(fmt.Sprintf("%d/%d", sum.GoalsMet, sum.DaysTracked)),
		Dim(fmt.Sprintf("(%d%%)", sum.CompletionRate))))
	if sum.BestDay != nil {
		b.WriteString(fmt.Sprintf("Best day       %s %s\n",
			StyleGreen.Render(HumanDay(sum.BestDay.Date, now)),
			Dim(FormatMinutes(sum.BestDay.ProductiveMinutes))))
	}
	b.WriteString("\n")

	headers := []string{"DATE", "FOCUS", "GOAL", "PROGRESS", "SESSIONS", ""}
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		mark := ""
		switch {
		case d.GoalMet:
			mark = StyleGreen.Render("✔")
		case d.StreakSaverUsed:
			mark = StyleBlue.Render("🛡")
		}
		pct := 1.0
		if d.GoalMinutes > 0 {
			pct = float64(d.ProductiveMinutes) / float64(d.GoalMinutes)
		}
		rows = append(rows, []string{
			HumanDay(d.Date, now),
			FormatMinutes(d.ProductiveMinutes),
			Dim(FormatMinutes(d.GoalMinutes)),
			RenderCompactBar(pct, insightsBarWidth, false),
			fmt.Sprint(d.Sessions),
			mark,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}
