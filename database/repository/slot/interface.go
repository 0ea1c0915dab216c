// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/database"
	"github.com/brenonevs/prs-timemesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository owns persistence of availability slots. The uniqueness of
// (userId, date, start, end) is enforced by a compound index.
type SlotRepository interface {
	GetByUserAndDate(ctx context.Context, userID, date string) ([]models.AvailabilitySlot, error)
	GetByUsersAndDates(ctx context.Context, userIDs, dates []string) ([]models.AvailabilitySlot, error)
	GetByID(ctx context.Context, userID, slotID string) (*models.AvailabilitySlot, error)
	GetByUser(ctx context.Context, userID string) ([]models.AvailabilitySlot, error)

	// ReplaceDaySlots atomically swaps the full slot set for one (user, date).
	// Slots with an empty ID are assigned one. Returns the persisted set in
	// ascending start order.
	ReplaceDaySlots(ctx context.Context, userID, date string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error)

	DeleteByKey(ctx context.Context, userID, date string, start, end int) error
	DeleteByID(ctx context.Context, userID, slotID string) error
	DeleteOlderThan(ctx context.Context, date string) (int64, error)

	UserStats(ctx context.Context, userID string) (*models.UserAvailabilityStats, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{
		coll: database.DB().Collection("slots"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create slot indexes: %v\n", err)
	}
	return repo
}
