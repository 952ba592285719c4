package notify

import (
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
	"github.com/google/uuid"
)

// Prepend adds events to the front of feed, newest first, and drops the
// oldest entries beyond limit. The input slice is not modified.
func Prepend(feed []domain.Notification, now time.Time, limit int, events ...Event) []domain.Notification {
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]domain.Notification, 0, len(feed)+len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		out = append(out, domain.Notification{
			ID:        uuid.NewString(),
			Kind:      e.Kind,
			Title:     e.Title,
			Message:   e.Message,
			Timestamp: now.UTC(),
		})
	}
	out = append(out, feed...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Find returns the index of the notification whose ID equals ref or, failing
// that, uniquely starts with ref. It returns -1 when nothing or more than one
// entry matches.
func Find(feed []domain.Notification, ref string) int {
	if ref == "" {
		return -1
	}
	match := -1
	for i, f := range feed {
		if f.ID == ref {
			return i
		}
		if strings.HasPrefix(f.ID, ref) {
			if match >= 0 {
				return -1
			}
			match = i
		}
	}
	return match
}

// MarkRead flags the notification referenced by ref (see Find). It reports
// whether one matched.
func MarkRead(feed []domain.Notification, ref string) bool {
	i := Find(feed, ref)
	if i < 0 {
		return false
	}
	feed[i].Read = true
	return true
}

func MarkAllRead(feed []domain.Notification) {
	for i := range feed {
		feed[i].Read = true
	}
}

func UnreadCount(feed []domain.Notification) int {
	n := 0
	for _, f := range feed {
		if !f.Read {
			n++
		}
	}
	return n
}

// Head returns at most limit entries; limit <= 0 returns all.
func Head(feed []domain.Notification, limit int) []domain.Notification {
	if limit <= 0 || limit >= len(feed) {
		return feed
	}
	return feed[:limit]
}
