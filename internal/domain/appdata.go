package domain

import "time"

// SchemaVersion is written into every document and backup. Backups with a
// different version are rejected.
const SchemaVersion = "1.0.0"

// AppData is the aggregate root persisted as one JSON document.
type AppData struct {
	Version     string               `json:"version" validate:"required"`
	Profile     UserProfile          `json:"profile"`
	DailyLogs   map[string]*DailyLog `json:"dailyLogs" validate:"dive,keys,datekey,endkeys,required"`
	StreakData  StreakData           `json:"streakData"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// NewAppData returns an empty document for a freshly onboarded profile.
func NewAppData(profile UserProfile, now time.Time) *AppData {
	return &AppData{
		Version:     SchemaVersion,
		Profile:     profile,
		DailyLogs:   make(map[string]*DailyLog),
		LastUpdated: now.UTC(),
	}
}

// BackupData wraps an AppData document for export.
type BackupData struct {
	Version    string    `json:"version" validate:"required"`
	ExportDate time.Time `json:"exportDate"`
	Data       *AppData  `json:"data" validate:"required"`
}
