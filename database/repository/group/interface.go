// File: database/repository/group/interface.go
package groupRepo

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/database"
	"github.com/brenonevs/prs-timemesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GroupRepository owns persistence of groups and their memberships.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) error
	GetGroupByID(ctx context.Context, groupID string) (*models.Group, error)
	DeleteGroup(ctx context.Context, groupID string) error
	ListGroupsForUser(ctx context.Context, userID string) ([]models.Group, error)
	SetGroupOwner(ctx context.Context, groupID, newOwnerID string) error

	CreateMembership(ctx context.Context, m models.GroupMembership) error
	GetMembership(ctx context.Context, groupID, userID string) (*models.GroupMembership, error)
	AcceptMembership(ctx context.Context, groupID, userID string) error
	DeleteMembership(ctx context.Context, groupID, userID string) error
	ListMemberships(ctx context.Context, groupID string, acceptedOnly bool) ([]models.GroupMembership, error)
	ListPendingForUser(ctx context.Context, userID string) ([]models.GroupMembership, error)
	AcceptedMemberIDs(ctx context.Context, groupID string) ([]string, error)

	InviteStats(ctx context.Context, groupID, inviterID string) (*models.GroupInviteStats, error)
}

type mongoGroupRepo struct {
	groups      *mongo.Collection
	memberships *mongo.Collection
}

// NewMongoGroupRepo constructs a new MongoDB GroupRepository.
func NewMongoGroupRepo() GroupRepository {
	db := database.DB()
	repo := &mongoGroupRepo{
		groups:      db.Collection("groups"),
		memberships: db.Collection("group_memberships"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create group indexes: %v\n", err)
	}
	return repo
}
