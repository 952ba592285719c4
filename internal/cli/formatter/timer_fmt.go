package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/alexanderramin/streax/internal/timer"
)

// FormatClock renders seconds as MM:SS, or H:MM:SS past an hour.
func FormatClock(seconds int) string {
	seconds = max(seconds, 0)
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func PhaseLabel(st *timer.State) string {
	switch st.ActivePhase() {
	case timer.PhaseFocus:
		label := StyleRed.Render("● FOCUS")
		if st.Phase == timer.PhasePaused {
			label += Dim(" (paused)")
		}
		return label
	case timer.PhaseBreak:
		label := StyleGreen.Render("● BREAK")
		if st.Phase == timer.PhasePaused {
			label += Dim(" (paused)")
		}
		return label
	default:
		return Dim("○ IDLE")
	}
}

// FormatTimer is the one-line timer status used by the scriptable commands.
func FormatTimer(st *timer.State) string {
	if st == nil || st.Phase == timer.PhaseIdle {
		return Dim("○ IDLE") + Dim("  start one with: streax timer start --task NAME") + "\n"
	}
	return fmt.Sprintf("%s  %s  %s %s\n",
		PhaseLabel(st), Bold(FormatClock(st.RemainingSeconds)), st.TaskName, Dim("("+st.Preset().Name+")"))
}

// FormatSessions lists a day's sessions in logging order.
func FormatSessions(log *domain.DailyLog) string {
	if len(log.Sessions) == 0 {
		return Dim("No sessions logged.") + "\n"
	}
	rows := make([][]string, 0, len(log.Sessions))
	for _, s := range log.Sessions {
		status := StyleGreen.Render("complete")
		if !s.Completed {
			status = StyleYellow.Render("partial")
		}
		rows = append(rows, []string{
			s.StartTime.In(time.Local).Format("15:04"),
			s.TaskName,
			FormatMinutes(s.DurationMinutes),
			Dim(s.Preset),
			status,
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"START", "TASK", "FOCUS", "PRESET", "STATUS"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%s · %s of %s", Pluralize(len(log.Sessions), "session", ""),
		FormatMinutes(log.ProductiveMinutes), FormatMinutes(log.GoalMinutes))) + "\n")
	return b.String()
}
