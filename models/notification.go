package models

import "time"

// NotificationEvent mirrors the toast records the web client renders:
// a severity variant, an optional title and a message, self-expiring.
type NotificationEvent struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
