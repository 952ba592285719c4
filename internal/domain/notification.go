package domain

import "time"

type NotificationKind string

const (
	NotificationInfo      NotificationKind = "info"
	NotificationSuccess   NotificationKind = "success"
	NotificationWarning   NotificationKind = "warning"
	NotificationMilestone NotificationKind = "milestone"
)

type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
