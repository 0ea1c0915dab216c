// File: services/group/interface.go
package group

import (
	"context"

	groupRepo "github.com/brenonevs/prs-timemesh/database/repository/group"
	userRepo "github.com/brenonevs/prs-timemesh/database/repository/user"
	"github.com/brenonevs/prs-timemesh/models"

	"github.com/go-redis/redis/v8"
)

// GroupService manages groups, invites and membership.
type GroupService interface {
	CreateGroup(ctx context.Context, ownerID string, req models.CreateGroupRequest) (*models.Group, error)
	ListGroups(ctx context.Context, userID string) ([]models.Group, error)
	DeleteGroup(ctx context.Context, requesterID, groupID string) error

	Invite(ctx context.Context, inviterID, groupID, username string) error
	AcceptInvite(ctx context.Context, userID, groupID string) error
	RejectInvite(ctx context.Context, userID, groupID string) error
	PendingInvites(ctx context.Context, userID string) ([]models.PendingInviteDTO, error)

	Members(ctx context.Context, requesterID, groupID string) ([]models.GroupMemberDTO, error)
	RemoveMember(ctx context.Context, requesterID, groupID, memberID string) error
	TransferOwnership(ctx context.Context, requesterID, groupID, newOwnerID string) error

	// ResolveMembers implements availability.GroupResolver.
	ResolveMembers(ctx context.Context, groupID, requesterID string) (bool, []string, error)
}

// InviteNotifier queues an invite notification for asynchronous delivery.
type InviteNotifier interface {
	NotifyInvite(ctx context.Context, payload models.InviteNotificationPayload) error
}

// DefaultGroupService implements GroupService on MongoDB with a Redis cache
// for resolved member lists. Cache and Notifier may be nil (tests).
type DefaultGroupService struct {
	Repo     groupRepo.GroupRepository
	Users    userRepo.UserRepository
	Cache    *redis.Client
	Notifier InviteNotifier
}
