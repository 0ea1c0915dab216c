// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"

	slotRepo "github.com/brenonevs/prs-timemesh/database/repository/slot"
	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultSlotService implements SlotService on top of the slot repository.
type DefaultSlotService struct {
	Repo  slotRepo.SlotRepository
	locks dayLocks
}

// dayLocks serializes writers per (user, date) so two concurrent inserts
// cannot resolve overlaps against a stale collection. Different users or
// dates proceed in parallel.
type dayLocks struct {
	m sync.Map
}

func (l *dayLocks) lock(userID, date string) func() {
	v, _ := l.m.LoadOrStore(userID+"|"+date, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *DefaultSlotService) Create(ctx context.Context, userID string, req models.CreateSlotRequest) ([]models.AvailabilitySlot, error) {
	v, err := validateSlotRequest(req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(userID, v.Date)
	defer unlock()

	existing, err := s.Repo.GetByUserAndDate(ctx, userID, v.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day collection: %w", err)
	}
	if err := verifyNoOverlap(existing); err != nil {
		utils.GetLogger().Error("slot store invariant violated",
			zap.String("userID", userID), zap.String("date", v.Date), zap.Error(err))
		return nil, fmt.Errorf("corrupt day collection: %w", err)
	}

	// Resolve each hour-grain segment in order against the evolving working
	// set; persist once at the end.
	working := existing
	for _, seg := range sliceHours(v.Start, v.End) {
		candidate := models.AvailabilitySlot{
			ID:        uuid.New().String(),
			UserID:    userID,
			Date:      v.Date,
			Start:     seg.Start,
			End:       seg.End,
			Title:     v.Title,
			Available: v.Available,
		}
		working = ResolveOverlap(candidate, working)
	}

	persisted, err := s.Repo.ReplaceDaySlots(ctx, userID, v.Date, working)
	if err != nil {
		return nil, fmt.Errorf("failed to persist day collection: %w", err)
	}

	created := make([]models.AvailabilitySlot, 0, len(persisted))
	for _, slot := range persisted {
		if slot.Overlaps(v.Start, v.End) {
			created = append(created, slot)
		}
	}
	return created, nil
}

func (s *DefaultSlotService) Update(ctx context.Context, userID, slotID string, req models.CreateSlotRequest) ([]models.AvailabilitySlot, error) {
	v, err := validateSlotRequest(req)
	if err != nil {
		return nil, err
	}

	current, err := s.Repo.GetByID(ctx, userID, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NotFoundError{Resource: "slot"}
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}

	// Lock both days in sorted order when the slot moves between dates.
	lockDates := []string{v.Date}
	if current.Date != v.Date {
		lockDates = append(lockDates, current.Date)
		sort.Strings(lockDates)
	}
	for _, d := range lockDates {
		unlock := s.locks.lock(userID, d)
		defer unlock()
	}

	existing, err := s.Repo.GetByUserAndDate(ctx, userID, current.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load day collection: %w", err)
	}

	// Lift the slot out of its day, then re-resolve it with its identity
	// preserved, possibly onto a different date.
	remaining := existing[:0:0]
	for _, slot := range existing {
		if slot.ID != slotID {
			remaining = append(remaining, slot)
		}
	}
	target := remaining
	if current.Date != v.Date {
		target, err = s.Repo.GetByUserAndDate(ctx, userID, v.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to load day collection: %w", err)
		}
	}

	candidate := models.AvailabilitySlot{
		ID:        slotID,
		UserID:    userID,
		Date:      v.Date,
		Start:     v.Start,
		End:       v.End,
		Title:     v.Title,
		Available: v.Available,
	}
	working := ResolveOverlap(candidate, target)

	// On a cross-date move, write the destination day first and clear the
	// origin last: if the second write fails the slot exists on both days,
	// which a retry can clean up, whereas the reverse order can lose it.
	persisted, err := s.Repo.ReplaceDaySlots(ctx, userID, v.Date, working)
	if err != nil {
		return nil, fmt.Errorf("failed to persist day collection: %w", err)
	}
	if current.Date != v.Date {
		if _, err := s.Repo.ReplaceDaySlots(ctx, userID, current.Date, remaining); err != nil {
			return nil, fmt.Errorf("failed to persist day collection: %w", err)
		}
	}

	updated := make([]models.AvailabilitySlot, 0, len(persisted))
	for _, slot := range persisted {
		if slot.Overlaps(v.Start, v.End) {
			updated = append(updated, slot)
		}
	}
	return updated, nil
}

func (s *DefaultSlotService) Delete(ctx context.Context, userID, slotID string) error {
	if err := s.Repo.DeleteByID(ctx, userID, slotID); err != nil {
		if err == mongo.ErrNoDocuments {
			return NotFoundError{Resource: "slot"}
		}
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

func (s *DefaultSlotService) List(ctx context.Context, userID, date string) ([]models.AvailabilitySlot, error) {
	if date == "" {
		return s.Repo.GetByUser(ctx, userID)
	}
	if _, err := models.ParseDate(date); err != nil {
		return nil, ValidationError{Field: "date", Message: err.Error()}
	}
	return s.Repo.GetByUserAndDate(ctx, userID, date)
}
