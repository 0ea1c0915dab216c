// File: services/group/groups.go
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateGroup creates a group and an accepted membership for the owner.
func (s *DefaultGroupService) CreateGroup(ctx context.Context, ownerID string, req models.CreateGroupRequest) (*models.Group, error) {
	now := time.Now()
	grp := models.Group{
		ID:        uuid.New().String(),
		Name:      req.Name,
		OwnerID:   ownerID,
		CreatedAt: now,
	}
	if err := s.Repo.CreateGroup(ctx, grp); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	membership := models.GroupMembership{
		ID:         uuid.New().String(),
		GroupID:    grp.ID,
		UserID:     ownerID,
		InvitedBy:  ownerID,
		Accepted:   true,
		InvitedAt:  now,
		AcceptedAt: &now,
	}
	if err := s.Repo.CreateMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}
	return &grp, nil
}

func (s *DefaultGroupService) ListGroups(ctx context.Context, userID string) ([]models.Group, error) {
	return s.Repo.ListGroupsForUser(ctx, userID)
}

func (s *DefaultGroupService) DeleteGroup(ctx context.Context, requesterID, groupID string) error {
	grp, err := s.Repo.GetGroupByID(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrGroupNotFound{}
		}
		return fmt.Errorf("failed to load group: %w", err)
	}
	if grp.OwnerID != requesterID {
		return ErrNotOwner{}
	}
	if err := s.Repo.DeleteGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	s.invalidateMemberCache(ctx, groupID)
	return nil
}

func (s *DefaultGroupService) RemoveMember(ctx context.Context, requesterID, groupID, memberID string) error {
	grp, err := s.Repo.GetGroupByID(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrGroupNotFound{}
		}
		return fmt.Errorf("failed to load group: %w", err)
	}
	if grp.OwnerID != requesterID {
		return ErrNotOwner{}
	}
	if memberID == grp.OwnerID {
		return fmt.Errorf("the owner cannot be removed from the group")
	}
	if err := s.Repo.DeleteMembership(ctx, groupID, memberID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotMember{}
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	s.invalidateMemberCache(ctx, groupID)
	return nil
}

func (s *DefaultGroupService) TransferOwnership(ctx context.Context, requesterID, groupID, newOwnerID string) error {
	grp, err := s.Repo.GetGroupByID(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrGroupNotFound{}
		}
		return fmt.Errorf("failed to load group: %w", err)
	}
	if grp.OwnerID != requesterID {
		return ErrNotOwner{}
	}

	// The new owner must already be an accepted member.
	membership, err := s.Repo.GetMembership(ctx, groupID, newOwnerID)
	if err != nil || !membership.Accepted {
		return ErrNotMember{}
	}

	if err := s.Repo.SetGroupOwner(ctx, groupID, newOwnerID); err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}
	utils.GetLogger().Info("group ownership transferred",
		zap.String("groupID", groupID),
		zap.String("from", requesterID),
		zap.String("to", newOwnerID))
	return nil
}
