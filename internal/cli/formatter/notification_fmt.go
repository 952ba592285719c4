package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
)

// FormatNotifications lists the feed newest first. Unread entries are bold.
func FormatNotifications(feed []domain.Notification, now time.Time) string {
	if len(feed) == 0 {
		return Dim("No notifications.") + "\n"
	}
	var b strings.Builder
	for _, n := range feed {
		style := KindStyle(n.Kind)
		title := n.Title
		if !n.Read {
			title = Bold(title)
		} else {
			title = Dim(title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			style.Render(KindIcon(n.Kind)), TruncID(n.ID), title, Dim(HumanTimestamp(n.Timestamp, now))))
		b.WriteString("           " + n.Message + "\n")
	}
	return b.String()
}
