package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/streax/internal/contract"
	"github.com/alexanderramin/streax/internal/streak"
)

const dashboardBarWidth = 24

// FormatDashboard renders today's progress, the streak ledger and the next
// milestone as one box.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder
	today := resp.Today

	greeting := "Hi " + Bold(resp.Profile.Name)
	if resp.Profile.Role != "" {
		greeting += Dim(" · " + resp.Profile.Role)
	}
	b.WriteString(greeting + "\n")
	if resp.Profile.LongTermGoal != "" {
		b.WriteString(Dim("Working toward: "+resp.Profile.LongTermGoal) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Today") + "\n")
	b.WriteString(fmt.Sprintf("%s / %s  %s\n",
		Bold(FormatMinutes(today.ProductiveMinutes)),
		FormatMinutes(today.GoalMinutes),
		RenderProgress(today.ProgressPct/100, dashboardBarWidth)))
	if today.GoalMet {
		line := StyleGreen.Render("✨ Goal Met!")
		if today.FreeTimeEarned > 0 {
			line += "  " + StylePurple.Render("+"+FormatMinutes(today.FreeTimeEarned)+" free time")
			if today.FreeTimeRemaining < today.FreeTimeEarned {
				line += Dim(fmt.Sprintf(" (%s left)", FormatMinutes(today.FreeTimeRemaining)))
			}
		}
		b.WriteString(line + "\n")
	} else {
		b.WriteString(Dim(FormatMinutes(today.DeficitMinutes)+" remaining to meet today's goal") + "\n")
	}
	if today.NextReward != nil {
		b.WriteString(Dim(fmt.Sprintf("Next reward: %s free time at %s",
			FormatMinutes(today.NextReward.Cumulative), FormatHours(int(today.NextReward.Hours*60)))) + "\n")
	}
	if today.BacklogMinutes > 0 {
		b.WriteString(StyleRed.Render("⚠ Backlog: "+FormatMinutes(today.BacklogMinutes)) + "\n")
	}
	if today.StreakSaverUsed {
		b.WriteString(StyleBlue.Render("🛡 Streak saver used today") + "\n")
	}
	b.WriteString(Dim(Pluralize(today.Sessions, "session", "")+" logged") + "\n\n")

	b.WriteString(Header("Streak") + "\n")
	b.WriteString(FormatStreakLine(resp) + "\n")
	b.WriteString(fmt.Sprintf("Streak savers %s · Backlog savers %s\n",
		Bold(fmt.Sprint(resp.Streak.StreakSavers)), Bold(FormatMinutes(resp.Streak.BacklogSavers))))
	b.WriteString(FormatMilestone(resp.NextMilestone) + "\n")

	var hints []string
	if resp.CanUseStreakSaver {
		hints = append(hints, "streax saver streak")
	}
	if resp.CanUseBacklogSaver {
		hints = append(hints, fmt.Sprintf("streax saver backlog --minutes %d", resp.MaxBacklogRedemption))
	}
	if len(hints) > 0 {
		b.WriteString("\n" + StyleYellow.Render("💎 Savers available: ") + Dim(strings.Join(hints, "  |  ")) + "\n")
	}

	if today.Notes != "" {
		b.WriteString("\n" + Header("Notes") + "\n" + today.Notes + "\n")
	}
	if resp.UnreadNotifications > 0 {
		b.WriteString("\n" + StylePurple.Render(Pluralize(resp.UnreadNotifications, "unread notification", "")) +
			Dim(" (streax notify list)") + "\n")
	}

	return RenderBox("Streax", strings.TrimRight(b.String(), "\n"))
}

// FormatStreakLine shows the current streak with its longest and total.
func FormatStreakLine(resp *contract.DashboardResponse) string {
	s := resp.Streak
	line := StyleHeader.Render("🔥 "+Pluralize(s.CurrentStreak, "day", "")) +
		Dim(fmt.Sprintf("  longest %d · total %d", s.LongestStreak, s.TotalDays))
	if resp.StreakAtRisk {
		line += "  " + StyleYellow.Render("(meet today's goal to keep it)")
	}
	return line
}

func FormatMilestone(m streak.Milestone) string {
	return fmt.Sprintf("Next milestone: %s %s",
		Bold(Pluralize(m.DaysRemaining, "day", "")),
		Dim(fmt.Sprintf("(%s: %s)", m.Kind, m.Reward)))
}
