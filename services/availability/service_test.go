// File: services/availability/service_test.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeSlotRepo is an in-memory SlotRepository keyed by userID|date.
type fakeSlotRepo struct {
	days   map[string][]models.AvailabilitySlot
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{days: make(map[string][]models.AvailabilitySlot)}
}

func dayKey(userID, date string) string { return userID + "|" + date }

func (r *fakeSlotRepo) GetByUserAndDate(_ context.Context, userID, date string) ([]models.AvailabilitySlot, error) {
	out := append([]models.AvailabilitySlot(nil), r.days[dayKey(userID, date)]...)
	return out, nil
}

func (r *fakeSlotRepo) GetByUsersAndDates(_ context.Context, userIDs, dates []string) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, id := range userIDs {
		for _, date := range dates {
			out = append(out, r.days[dayKey(id, date)]...)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, userID, slotID string) (*models.AvailabilitySlot, error) {
	for key, slots := range r.days {
		if key[:len(userID)+1] != userID+"|" {
			continue
		}
		for _, s := range slots {
			if s.ID == slotID {
				found := s
				return &found, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) GetByUser(_ context.Context, userID string) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for key, slots := range r.days {
		if key[:len(userID)+1] == userID+"|" {
			out = append(out, slots...)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) ReplaceDaySlots(_ context.Context, userID, date string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
	stored := make([]models.AvailabilitySlot, len(slots))
	for i, s := range slots {
		if s.ID == "" {
			r.nextID++
			s.ID = fmt.Sprintf("gen-%d", r.nextID)
		}
		s.UserID = userID
		s.Date = date
		stored[i] = s
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].Start < stored[j].Start })
	r.days[dayKey(userID, date)] = stored
	return append([]models.AvailabilitySlot(nil), stored...), nil
}

func (r *fakeSlotRepo) DeleteByKey(_ context.Context, userID, date string, start, end int) error {
	key := dayKey(userID, date)
	for i, s := range r.days[key] {
		if s.Start == start && s.End == end {
			r.days[key] = append(r.days[key][:i], r.days[key][i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) DeleteByID(_ context.Context, userID, slotID string) error {
	for key, slots := range r.days {
		if key[:len(userID)+1] != userID+"|" {
			continue
		}
		for i, s := range slots {
			if s.ID == slotID {
				r.days[key] = append(slots[:i], slots[i+1:]...)
				return nil
			}
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) DeleteOlderThan(_ context.Context, date string) (int64, error) {
	var deleted int64
	for key, slots := range r.days {
		var kept []models.AvailabilitySlot
		for _, s := range slots {
			if s.Date < date {
				deleted++
				continue
			}
			kept = append(kept, s)
		}
		r.days[key] = kept
	}
	return deleted, nil
}

func (r *fakeSlotRepo) UserStats(_ context.Context, _ string) (*models.UserAvailabilityStats, error) {
	return &models.UserAvailabilityStats{}, nil
}

// flakyReplaceRepo errors every ReplaceDaySlots on one date once armed.
type flakyReplaceRepo struct {
	*fakeSlotRepo
	failDate string
}

func (r *flakyReplaceRepo) ReplaceDaySlots(ctx context.Context, userID, date string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
	if date == r.failDate {
		return nil, errors.New("connection reset")
	}
	return r.fakeSlotRepo.ReplaceDaySlots(ctx, userID, date, slots)
}

func TestSlotServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Slices Into Hour Segments", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date:      "2026-09-01",
			StartTime: "08:00",
			EndTime:   "10:30",
			Title:     "Work",
		})

		assert.NoError(t, err)
		assert.Len(t, created, 3)
		assert.Equal(t, 480, created[0].Start)
		assert.Equal(t, 540, created[0].End)
		assert.Equal(t, 540, created[1].Start)
		assert.Equal(t, 600, created[1].End)
		assert.Equal(t, 600, created[2].Start)
		assert.Equal(t, 630, created[2].End)
		for _, s := range created {
			assert.NotEmpty(t, s.ID)
			assert.True(t, s.Available)
		}
	})

	t.Run("Resolves Against Existing Slots", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := &DefaultSlotService{Repo: repo}

		_, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.NoError(t, err)

		_, err = svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:30", EndTime: "10:30", Title: "Work",
		})
		assert.NoError(t, err)

		day, _ := repo.GetByUserAndDate(ctx, "u1", "2026-09-01")
		assert.NoError(t, verifyNoOverlap(day))
		assert.Equal(t, 540, day[0].Start)
		assert.Equal(t, 570, day[0].End)
		assert.Equal(t, "Gym", day[0].Title)
	})

	t.Run("Rejects Inverted Range", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		_, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "10:00", EndTime: "09:00", Title: "Work",
		})

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "startTime", verr.Field)
	})

	t.Run("Title Limit Counts Characters Not Bytes", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00",
			Title: strings.Repeat("日", 100),
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, created)

		_, err = svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00",
			Title: strings.Repeat("日", 101),
		})
		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("Rejects Missing Title", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		_, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "   ",
		})

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})
}

func TestSlotServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Keeps Identity And Re-resolves", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := &DefaultSlotService{Repo: repo}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.NoError(t, err)
		slotID := created[0].ID

		updated, err := svc.Update(ctx, "u1", slotID, models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30", Title: "Stretch",
		})

		assert.NoError(t, err)
		assert.Len(t, updated, 1)
		assert.Equal(t, slotID, updated[0].ID)
		assert.Equal(t, "Stretch", updated[0].Title)
		assert.Equal(t, 540, updated[0].Start)
		assert.Equal(t, 570, updated[0].End)
	})

	t.Run("Moves Across Dates", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := &DefaultSlotService{Repo: repo}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.NoError(t, err)
		slotID := created[0].ID

		updated, err := svc.Update(ctx, "u1", slotID, models.CreateSlotRequest{
			Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})

		assert.NoError(t, err)
		assert.Len(t, updated, 1)
		assert.Equal(t, slotID, updated[0].ID)
		assert.Equal(t, "2026-09-02", updated[0].Date)

		oldDay, _ := repo.GetByUserAndDate(ctx, "u1", "2026-09-01")
		assert.Empty(t, oldDay)
	})

	t.Run("Failed Move Never Loses The Slot", func(t *testing.T) {
		inner := newFakeSlotRepo()
		repo := &flakyReplaceRepo{fakeSlotRepo: inner}
		svc := &DefaultSlotService{Repo: repo}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.NoError(t, err)
		slotID := created[0].ID

		// Clearing the origin day fails after the destination write went
		// through; the update errors but the slot must still be retrievable.
		repo.failDate = "2026-09-01"
		_, err = svc.Update(ctx, "u1", slotID, models.CreateSlotRequest{
			Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.Error(t, err)

		moved, err := inner.GetByID(ctx, "u1", slotID)
		assert.NoError(t, err)
		assert.NotNil(t, moved)

		newDay, _ := inner.GetByUserAndDate(ctx, "u1", "2026-09-02")
		assert.Len(t, newDay, 1, "destination day holds the slot")
	})

	t.Run("Failed Destination Write Leaves The Origin Intact", func(t *testing.T) {
		inner := newFakeSlotRepo()
		repo := &flakyReplaceRepo{fakeSlotRepo: inner}
		svc := &DefaultSlotService{Repo: repo}

		created, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.NoError(t, err)
		slotID := created[0].ID

		repo.failDate = "2026-09-02"
		_, err = svc.Update(ctx, "u1", slotID, models.CreateSlotRequest{
			Date: "2026-09-02", StartTime: "09:00", EndTime: "10:00", Title: "Gym",
		})
		assert.Error(t, err)

		oldDay, _ := inner.GetByUserAndDate(ctx, "u1", "2026-09-01")
		assert.Len(t, oldDay, 1, "origin day still holds the slot")
		assert.Equal(t, slotID, oldDay[0].ID)
	})

	t.Run("Unknown Slot", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		_, err := svc.Update(ctx, "u1", "missing", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Work",
		})

		var nf NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestSlotServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Slot", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		err := svc.Delete(ctx, "u1", "missing")

		var nf NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestBatchCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial Failure Reports Per Item", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		resp := svc.BatchCreate(ctx, "u1", []models.CreateSlotRequest{
			{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Work"},
			{Date: "2026-09-01", StartTime: "11:00", EndTime: "10:00", Title: "Broken"},
			{Date: "2026-09-02", StartTime: "08:00", EndTime: "09:30", Title: "Gym"},
		})

		assert.Equal(t, 2, resp.CreatedCount)
		assert.Len(t, resp.Results, 3)
		assert.Empty(t, resp.Results[0].Error)
		assert.NotEmpty(t, resp.Results[1].Error)
		assert.Equal(t, 1, resp.Results[1].Index)
		assert.Len(t, resp.Results[2].Slots, 2)
	})
}

func TestBatchDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Slot Does Not Abort The Batch", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := &DefaultSlotService{Repo: repo}

		_, err := svc.Create(ctx, "u1", models.CreateSlotRequest{
			Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00", Title: "Work",
		})
		assert.NoError(t, err)

		resp, err := svc.BatchDelete(ctx, "u1", []models.SlotKey{
			{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"},
			{Date: "2026-09-01", StartTime: "14:00", EndTime: "15:00"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.DeletedCount)
		assert.Len(t, resp.Errors, 1)
		assert.Equal(t, "Slot not found", resp.Errors[0].Error)
		assert.Equal(t, "14:00", resp.Errors[0].Slot.StartTime)
	})

	t.Run("Invalid Key Is A Per-Item Error", func(t *testing.T) {
		svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

		resp, err := svc.BatchDelete(ctx, "u1", []models.SlotKey{
			{Date: "not-a-date", StartTime: "09:00", EndTime: "10:00"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.DeletedCount)
		assert.Len(t, resp.Errors, 1)
	})
}
