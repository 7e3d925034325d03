package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is the payload handed to the notification dispatcher.
type Message struct {
	Title         string
	Body          string
	ApplicationID *uuid.UUID
}

// Notification is an in-app notification delivered to a single user.
type Notification struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Body          string
	ApplicationID *uuid.UUID
	ReadAt        *time.Time
	CreatedAt     time.Time
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
