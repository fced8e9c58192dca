package models

// Change event types published after a successful write.
const (
	EventProfileSaved   = "profile.saved"
	EventContactAdded   = "contact.added"
	EventContactDeleted = "contact.deleted"
)

// ChangeEvent describes a committed write to profiles or contacts.
type ChangeEvent struct {
	EventID       string `json:"event_id"`          // Unique identifier of the event
	Type          string `json:"type"`              // One of the Event* constants
	WalletAddress string `json:"wallet_address"`    // Profile owner the change belongs to
	Subject       string `json:"subject,omitempty"` // Contact wallet for contact events
	Timestamp     int64  `json:"timestamp"`         // Unix seconds when the write committed
}
