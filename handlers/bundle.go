// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	userRepoPkg "github.com/brenonevs/prs-timemesh/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	MeHandler               gin.HandlerFunc

	// Availability endpoints
	CreateSlotHandler       gin.HandlerFunc
	ListSlotsHandler        gin.HandlerFunc
	UpdateSlotHandler       gin.HandlerFunc
	DeleteSlotHandler       gin.HandlerFunc
	BatchCreateSlotsHandler gin.HandlerFunc
	BatchDeleteSlotsHandler gin.HandlerFunc

	// Match endpoints
	MatchUsersHandler gin.HandlerFunc
	MatchGroupHandler gin.HandlerFunc

	// Group endpoints
	CreateGroupHandler       gin.HandlerFunc
	ListGroupsHandler        gin.HandlerFunc
	DeleteGroupHandler       gin.HandlerFunc
	InviteHandler            gin.HandlerFunc
	AcceptInviteHandler      gin.HandlerFunc
	RejectInviteHandler      gin.HandlerFunc
	PendingInvitesHandler    gin.HandlerFunc
	MembersHandler           gin.HandlerFunc
	RemoveMemberHandler      gin.HandlerFunc
	TransferOwnershipHandler gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Analytics endpoints
	UserStatsHandler        gin.HandlerFunc
	GroupInviteStatsHandler gin.HandlerFunc
}
