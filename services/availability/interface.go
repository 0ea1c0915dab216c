// File: services/availability/interface.go
package availability

import (
	"context"

	"github.com/brenonevs/prs-timemesh/models"
)

// SlotService owns the authoritative per-user slot collections.
type SlotService interface {
	// Create decomposes the request into hour-grain segments and resolves
	// each against the evolving day collection. Returns the stored slots
	// covering the requested range.
	Create(ctx context.Context, userID string, req models.CreateSlotRequest) ([]models.AvailabilitySlot, error)
	// Update re-resolves an existing slot with new bounds, keeping its identity.
	Update(ctx context.Context, userID, slotID string, req models.CreateSlotRequest) ([]models.AvailabilitySlot, error)
	Delete(ctx context.Context, userID, slotID string) error
	List(ctx context.Context, userID, date string) ([]models.AvailabilitySlot, error)

	BatchCreate(ctx context.Context, userID string, reqs []models.CreateSlotRequest) models.BatchCreateResponse
	BatchDelete(ctx context.Context, userID string, keys []models.SlotKey) (models.BatchDeleteResponse, error)
}

// MatchService computes common availability windows.
type MatchService interface {
	MatchUsers(ctx context.Context, userIDs []string, date string) ([]models.MatchWindow, error)
	MatchGroup(ctx context.Context, requesterID, groupID string, req models.GroupMatchRequest) ([]models.MatchWindow, error)
}

// GroupResolver supplies the accepted member list of a group. Implemented by
// the group service; the matcher treats it as an external collaborator.
type GroupResolver interface {
	ResolveMembers(ctx context.Context, groupID, requesterID string) (isMember bool, memberIDs []string, err error)
}
