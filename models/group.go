package models

import "time"

// Group is a collaboration space whose accepted members share availability.
type Group struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// GroupMembership links a user to a group. A membership starts as a pending
// invite (Accepted == false) and becomes effective once accepted.
type GroupMembership struct {
	ID         string     `bson:"id" json:"id"`
	GroupID    string     `bson:"groupId" json:"groupId"`
	UserID     string     `bson:"userId" json:"userId"`
	InvitedBy  string     `bson:"invitedBy" json:"invitedBy"`
	Accepted   bool       `bson:"accepted" json:"accepted"`
	InvitedAt  time.Time  `bson:"invitedAt" json:"invitedAt"`
	AcceptedAt *time.Time `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
}

// CreateGroupRequest defines the payload for creating a group.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// InviteRequest invites a user to a group by username.
type InviteRequest struct {
	Username string `json:"username" binding:"required"`
}

// MemberActionRequest targets a member of a group by user id, for
// owner-driven actions (remove member, transfer ownership).
type MemberActionRequest struct {
	GroupID string `json:"groupId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

// GroupMemberDTO is the wire representation of one accepted or pending member.
type GroupMemberDTO struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	InvitedBy string    `json:"invitedBy"`
	Accepted  bool      `json:"accepted"`
	InvitedAt time.Time `json:"invitedAt"`
}

// PendingInviteDTO describes an invite awaiting the user's decision.
type PendingInviteDTO struct {
	GroupID   string    `json:"groupId"`
	GroupName string    `json:"groupName"`
	InvitedBy string    `json:"invitedBy"`
	InvitedAt time.Time `json:"invitedAt"`
}
