// Package report renders insights as a printable PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/streax/internal/app"
	"github.com/alexanderramin/streax/internal/cli/formatter"
	"github.com/alexanderramin/streax/internal/domain"
	"github.com/go-pdf/fpdf"
)

var dayColumns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 40, "L"},
	{"Focus", 30, "R"},
	{"Goal", 30, "R"},
	{"Sessions", 25, "R"},
	{"Goal met", 25, "C"},
	{"Saver", 25, "C"},
}

// WritePDF writes an A4 report of resp for profile to w.
func WritePDF(w io.Writer, resp *app.InsightsResponse, profile domain.UserProfile, generated time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Streax insights", true)
	pdf.SetAuthor(profile.Name, true)
	pdf.SetCreationDate(generated)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Productivity Report: %s", profile.Name)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	span := resp.Summary.From
	if resp.Summary.To != resp.Summary.From {
		span += " to " + resp.Summary.To
	}
	pdf.Cell(0, 6, tr(fmt.Sprintf("Timeframe: %s (%s)", resp.Timeframe, span)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Daily commitment: %s", formatter.FormatMinutes(profile.DailyCommitmentMinutes)))
	pdf.Ln(10)

	writeSummary(pdf, resp.Summary)
	if len(resp.Days) > 0 {
		writeDays(pdf, resp.Days)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, "Generated "+generated.Format("2006-01-02 15:04"))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func writeSummary(pdf *fpdf.Fpdf, sum app.InsightsSummary) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)

	rows := [][2]string{
		{"Days tracked", fmt.Sprint(sum.DaysTracked)},
		{"Total focus", fmt.Sprintf("%s (%s)", formatter.FormatMinutes(sum.TotalMinutes), formatter.FormatHours(sum.TotalMinutes))},
		{"Sessions", fmt.Sprintf("%d (%d completed)", sum.TotalSessions, sum.CompletedSessions)},
		{"Daily average", formatter.FormatMinutes(int(sum.AverageMinutes + 0.5))},
		{"Goals met", fmt.Sprintf("%d of %d (%d%%)", sum.GoalsMet, sum.DaysTracked, sum.CompletionRate)},
	}
	if sum.BestDay != nil {
		rows = append(rows, [2]string{"Best day",
			fmt.Sprintf("%s, %s", sum.BestDay.Date, formatter.FormatMinutes(sum.BestDay.ProductiveMinutes))})
	}

	pdf.SetFont("Arial", "", 11)
	for _, r := range rows {
		pdf.CellFormat(45, 7, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, r[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func writeDays(pdf *fpdf.Fpdf, days []app.DayStat) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Daily breakdown")
	pdf.Ln(9)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(254, 128, 25)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range dayColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 240, 240)
	for i, d := range days {
		cells := []string{
			d.Date,
			formatter.FormatMinutes(d.ProductiveMinutes),
			formatter.FormatMinutes(d.GoalMinutes),
			fmt.Sprint(d.Sessions),
			yesNo(d.GoalMet),
			yesNo(d.StreakSaverUsed),
		}
		fill := i%2 == 1
		for j, c := range dayColumns {
			pdf.CellFormat(c.width, 6, cells[j], "1", 0, c.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
