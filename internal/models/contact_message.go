package models

import "time"

// MessageStatus is the triage state of a contact message.
type MessageStatus string

const (
	StatusPending   MessageStatus = "pending"
	StatusApproved  MessageStatus = "approved"
	StatusFulfilled MessageStatus = "fulfilled"
)

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusFulfilled:
		return true
	}
	return false
}

// ContactMessage is one inquiry submitted through the public contact
// form. Timestamp is set at creation and never changes.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Status    MessageStatus `json:"status"`
}
