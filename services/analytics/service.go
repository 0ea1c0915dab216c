// File: services/analytics/service.go
package analytics

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/availability"

	groupRepo "github.com/brenonevs/prs-timemesh/database/repository/group"
	slotRepo "github.com/brenonevs/prs-timemesh/database/repository/slot"
)

// AnalyticsService computes aggregate statistics over stored slots and
// group invites.
type AnalyticsService interface {
	UserStats(ctx context.Context, userID string) (*models.UserAvailabilityStats, error)
	GroupInviteStats(ctx context.Context, requesterID, groupID string) (*models.GroupInviteStats, error)
}

// DefaultAnalyticsService delegates the heavy lifting to Mongo aggregations.
type DefaultAnalyticsService struct {
	Slots  slotRepo.SlotRepository
	Groups groupRepo.GroupRepository
	Member availability.GroupResolver
}

// UserStats summarizes the requesting user's own slots.
func (s *DefaultAnalyticsService) UserStats(ctx context.Context, userID string) (*models.UserAvailabilityStats, error) {
	stats, err := s.Slots.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability stats: %w", err)
	}
	return stats, nil
}

// GroupInviteStats summarizes invites the requester has sent within a group.
// Only members may see their own invite figures.
func (s *DefaultAnalyticsService) GroupInviteStats(ctx context.Context, requesterID, groupID string) (*models.GroupInviteStats, error) {
	isMember, _, err := s.Member.ResolveMembers(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, availability.ForbiddenError{Message: "you are not a member of this group"}
	}

	stats, err := s.Groups.InviteStats(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute invite stats: %w", err)
	}
	return stats, nil
}
