package user

import "time"

type EventType string

const (
	EventTypeRegistered EventType = "user.registered"
)

type Event struct {
	Type       EventType `json:"event_type"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewRegisteredEvent(u *User) Event {
	return Event{
		Type:       EventTypeRegistered,
		UserID:     u.ID,
		Email:      u.Email,
		OccurredAt: time.Now().UTC(),
	}
}
