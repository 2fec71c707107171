package models

// EventType identifies the events a webhook subscribes to.
type EventType string

const (
	EventTypeBonusCreated     EventType = "bonus.created"
	EventTypeAchievementEvent EventType = "achievement_event.created"
)

// Webhook is a registered event callback.
type Webhook struct {
	ID         string      `json:"id"`
	URL        string      `json:"url"`
	EventTypes []EventType `json:"event_types"`
}
