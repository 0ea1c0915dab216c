package models

import "time"

// Notification types.
const (
	NotificationGroupInvite = "group_invite"
)

// Notification is a persisted message a client polls for.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Type      string    `bson:"type" json:"type"`
	Message   string    `bson:"message" json:"message"`
	GroupID   string    `bson:"groupId,omitempty" json:"groupId,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// InviteNotificationPayload is the task payload queued when a group invite
// is sent.
type InviteNotificationPayload struct {
	GroupID     string `json:"groupId"`
	GroupName   string `json:"groupName"`
	InviterName string `json:"inviterName"`
	InviteeID   string `json:"inviteeId"`
}
