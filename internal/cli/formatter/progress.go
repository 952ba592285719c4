package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPct(pct float64) float64 {
	return min(1, max(0, pct))
}

func progressStyleFor(pct float64) func(...string) string {
	switch {
	case pct >= 1:
		return StyleGreen.Render
	case pct >= 0.5:
		return StyleYellow.Render
	default:
		return StyleRed.Render
	}
}

// RenderProgress renders a bar like [████░░░░]  45%. pct is a fraction;
// the bar turns green once the goal is reached.
func RenderProgress(pct float64, width int) string {
	pct = clampPct(pct)
	width = max(width, 2)
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyleFor(pct)(bar), pct*100)
}

// RenderCompactBar renders the bar alone, for table cells. dim renders it
// without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampPct(pct)
	width = max(width, 2)
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return bar
	}
	return progressStyleFor(pct)(bar)
}
