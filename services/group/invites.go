// File: services/group/invites.go
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

// Invite creates a pending membership for the named user. Owner only.
func (s *DefaultGroupService) Invite(ctx context.Context, inviterID, groupID, username string) error {
	grp, err := s.Repo.GetGroupByID(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrGroupNotFound{}
		}
		return fmt.Errorf("failed to load group: %w", err)
	}
	if grp.OwnerID != inviterID {
		return ErrNotOwner{}
	}

	invitee, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if invitee == nil {
		return fmt.Errorf("user %q not found", username)
	}

	if existing, err := s.Repo.GetMembership(ctx, groupID, invitee.ID); err == nil && existing != nil {
		return ErrAlreadyInvited{}
	}

	membership := models.GroupMembership{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		UserID:    invitee.ID,
		InvitedBy: inviterID,
		Accepted:  false,
		InvitedAt: time.Now(),
	}
	if err := s.Repo.CreateMembership(ctx, membership); err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}

	if s.Notifier != nil {
		inviterNames, _ := s.Users.Usernames(ctx, []string{inviterID})
		payload := models.InviteNotificationPayload{
			GroupID:     groupID,
			GroupName:   grp.Name,
			InviterName: inviterNames[inviterID],
			InviteeID:   invitee.ID,
		}
		if err := s.Notifier.NotifyInvite(ctx, payload); err != nil {
			// The invite itself succeeded; delivery is best-effort.
			utils.GetLogger().Warn("failed to enqueue invite notification",
				zap.String("groupID", groupID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultGroupService) AcceptInvite(ctx context.Context, userID, groupID string) error {
	if err := s.Repo.AcceptMembership(ctx, groupID, userID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNoPendingInvite{}
		}
		return fmt.Errorf("failed to accept invite: %w", err)
	}
	s.invalidateMemberCache(ctx, groupID)
	return nil
}

func (s *DefaultGroupService) RejectInvite(ctx context.Context, userID, groupID string) error {
	membership, err := s.Repo.GetMembership(ctx, groupID, userID)
	if err != nil || membership == nil || membership.Accepted {
		return ErrNoPendingInvite{}
	}
	if err := s.Repo.DeleteMembership(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to reject invite: %w", err)
	}
	return nil
}

func (s *DefaultGroupService) PendingInvites(ctx context.Context, userID string) ([]models.PendingInviteDTO, error) {
	memberships, err := s.Repo.ListPendingForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	invites := make([]models.PendingInviteDTO, 0, len(memberships))
	for _, m := range memberships {
		invite := models.PendingInviteDTO{
			GroupID:   m.GroupID,
			InvitedAt: m.InvitedAt,
		}
		if grp, err := s.Repo.GetGroupByID(ctx, m.GroupID); err == nil {
			invite.GroupName = grp.Name
		}
		if names, err := s.Users.Usernames(ctx, []string{m.InvitedBy}); err == nil {
			invite.InvitedBy = names[m.InvitedBy]
		}
		invites = append(invites, invite)
	}
	return invites, nil
}
