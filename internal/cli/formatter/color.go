package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme renders with. Tomato is the accent
// used for headers, focus phases and the timer bar.
type Palette struct {
	Good   lipgloss.Color
	Warn   lipgloss.Color
	Bad    lipgloss.Color
	Info   lipgloss.Color
	Reward lipgloss.Color
	Muted  lipgloss.Color
	Text   lipgloss.Color
	Tomato lipgloss.Color
}

var (
	DarkPalette = Palette{
		Good:   "#8ec07c",
		Warn:   "#fabd2f",
		Bad:    "#fb4934",
		Info:   "#83a598",
		Reward: "#d3869b",
		Muted:  "#928374",
		Text:   "#ebdbb2",
		Tomato: "#ff6347",
	}
	LightPalette = Palette{
		Good:   "#427b58",
		Warn:   "#b57614",
		Bad:    "#9d0006",
		Info:   "#076678",
		Reward: "#8f3f71",
		Muted:  "#7c6f64",
		Text:   "#3c3836",
		Tomato: "#c0392b",
	}
)

// Colors and styles of the active palette. ApplyTheme swaps them.
var (
	ColorGreen, ColorYellow, ColorRed, ColorBlue, ColorPurple  lipgloss.Color
	ColorDim, ColorFg, ColorHeader                             lipgloss.Color
	StyleGreen, StyleYellow, StyleRed, StyleBlue, StylePurple  lipgloss.Style
	StyleDim, StyleFg, StyleHeader, StyleBold                  lipgloss.Style
)

func init() { usePalette(DarkPalette) }

// ApplyTheme switches rendering to the palette for theme. Unknown themes
// fall back to dark.
func ApplyTheme(theme domain.Theme) {
	if theme == domain.ThemeLight {
		usePalette(LightPalette)
		return
	}
	usePalette(DarkPalette)
}

func usePalette(p Palette) {
	ColorGreen, ColorYellow, ColorRed = p.Good, p.Warn, p.Bad
	ColorBlue, ColorPurple = p.Info, p.Reward
	ColorDim, ColorFg, ColorHeader = p.Muted, p.Text, p.Tomato

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	StyleGreen, StyleYellow, StyleRed = fg(ColorGreen), fg(ColorYellow), fg(ColorRed)
	StyleBlue, StylePurple = fg(ColorBlue), fg(ColorPurple)
	StyleDim, StyleFg = fg(ColorDim), fg(ColorFg)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold = fg(ColorFg).Bold(true)
}

// KindStyle colors a notification by its kind.
func KindStyle(kind domain.NotificationKind) lipgloss.Style {
	switch kind {
	case domain.NotificationSuccess:
		return StyleGreen
	case domain.NotificationWarning:
		return StyleYellow
	case domain.NotificationMilestone:
		return StylePurple
	default:
		return StyleBlue
	}
}

func KindIcon(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotificationSuccess:
		return "✔"
	case domain.NotificationWarning:
		return "▲"
	case domain.NotificationMilestone:
		return "★"
	default:
		return "●"
	}
}

// Header upper-cases text over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(title), StyleDim.Render(rule))
}

func Dim(text string) string { return StyleDim.Render(text) }

func Bold(text string) string { return StyleBold.Render(text) }
