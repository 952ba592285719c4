package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanDate names t relative to today: "Today", "Yesterday", "Mar 8", or
// "Mar 8, 2025" outside the current year.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

func HumanDateFrom(t, now time.Time) string {
	t, now = t.In(time.Local), now.In(time.Local)
	day := domain.DateKey(t)
	switch day {
	case domain.DateKey(now):
		return "Today"
	case domain.DateKey(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

// HumanDay is HumanDate for a YYYY-MM-DD key. Unparseable keys are
// returned unchanged.
func HumanDay(date string, now time.Time) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return HumanDateFrom(t, now)
}

// HumanTimestamp returns a short relative time such as "5m ago".
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDateFrom(t, now)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDateFrom(t, now)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into "2h 30m", "2h" or "45m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders minutes as hours with one decimal: "2.5 hours".
func FormatHours(minutes int) string {
	hours := fmt.Sprintf("%.1f", float64(minutes)/60)
	if hours == "1.0" {
		return hours + " hour"
	}
	return hours + " hours"
}

// FormatPercent returns value/total as a rounded percentage; a zero total
// yields 0.
func FormatPercent(value, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(total) * 100))
}

// Pluralize prefixes the count: "1 day", "3 days". An empty plural appends
// "s" to singular.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	if plural == "" {
		plural = singular + "s"
	}
	return fmt.Sprintf("%d %s", n, plural)
}
