package events

import "time"

// EventType enumerates published auth events.
type EventType string

const (
	EventTypeUserRegistered EventType = "user.registered"
	EventTypeUserLoggedIn   EventType = "user.logged_in"
)

// Event carries an auth occurrence to subscribers.
type Event struct {
	Type       EventType
	UserID     int64
	Username   string
	OccurredAt time.Time
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType EventType, userID int64, username string) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		Username:   username,
		OccurredAt: time.Now(),
	}
}
