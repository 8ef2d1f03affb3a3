package models

// Account event types published to the broker.
const (
	EventHubUserCreated      = "hub_user.created"
	EventHubUserEmailUpdated = "hub_user.email_updated"
	EventHubUserDeleted      = "hub_user.deleted"
)

// AccountEvent describes a change to an account, published after the change is committed.
type AccountEvent struct {
	EventID     string `json:"event_id"`      // EventID is a unique identifier of the event.
	Type        string `json:"type"`          // Type is one of the Event* constants.
	Timestamp   int64  `json:"timestamp"`     // Timestamp is the Unix time (seconds) of the change.
	UserID      int64  `json:"user_id"`       // UserID is the identity record id.
	HubUserUUID string `json:"hub_user_uuid"` // HubUserUUID is the public id of the profile, empty if unknown.
	Email       string `json:"email"`         // Email is the identity email after the change.
}
