// File: services/availability/overlap_test.go
package availability

import (
	"testing"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/stretchr/testify/assert"
)

func slot(id string, start, end int, title string) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        id,
		UserID:    "u1",
		Date:      "2026-09-01",
		Start:     start,
		End:       end,
		Title:     title,
		Available: true,
	}
}

func TestResolveOverlap(t *testing.T) {
	t.Run("Empty Collection", func(t *testing.T) {
		candidate := slot("c", 540, 600, "Work")

		out := ResolveOverlap(candidate, nil)

		assert.Len(t, out, 1)
		assert.Equal(t, candidate, out[0])
	})

	t.Run("No Overlap Keeps Everything", func(t *testing.T) {
		existing := []models.AvailabilitySlot{
			slot("a", 480, 540, "Gym"),
			slot("b", 720, 780, "Lunch"),
		}
		candidate := slot("c", 540, 600, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		assert.Len(t, out, 3)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "c", out[1].ID)
		assert.Equal(t, "b", out[2].ID)
	})

	t.Run("Partial Overlap Emits Residuals", func(t *testing.T) {
		// Existing 09:00-11:00, candidate 10:00-12:00: the tail of the
		// existing slot is cut off and the head survives as a residual.
		existing := []models.AvailabilitySlot{slot("a", 540, 660, "Gym")}
		candidate := slot("c", 600, 720, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		assert.Len(t, out, 2)
		assert.Equal(t, 540, out[0].Start)
		assert.Equal(t, 600, out[0].End)
		assert.Equal(t, "Gym", out[0].Title)
		assert.Empty(t, out[0].ID, "residual must be re-issued a fresh identity")
		assert.Equal(t, candidate, out[1])
	})

	t.Run("Straddling Slot Leaves Residuals On Both Sides", func(t *testing.T) {
		existing := []models.AvailabilitySlot{slot("a", 480, 720, "Gym")}
		candidate := slot("c", 540, 600, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		assert.Len(t, out, 3)
		assert.Equal(t, 480, out[0].Start)
		assert.Equal(t, 540, out[0].End)
		assert.Equal(t, candidate, out[1])
		assert.Equal(t, 600, out[2].Start)
		assert.Equal(t, 720, out[2].End)
	})

	t.Run("Contained Overwrite Reuses First Identity", func(t *testing.T) {
		// Both existing slots sit fully inside the candidate: the earliest
		// one is widened in place, the other disappears.
		existing := []models.AvailabilitySlot{
			slot("a", 560, 580, "Gym"),
			slot("b", 600, 630, "Read"),
		}
		candidate := slot("c", 540, 660, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.Len(t, out, 1)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, 540, out[0].Start)
		assert.Equal(t, 660, out[0].End)
		assert.Equal(t, "Work", out[0].Title)
	})

	t.Run("Exact Bounds Count As Contained", func(t *testing.T) {
		existing := []models.AvailabilitySlot{slot("a", 540, 600, "Gym")}
		candidate := slot("c", 540, 600, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.Len(t, out, 1)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "Work", out[0].Title)
	})

	t.Run("Mixed Containment Uses Split Policy", func(t *testing.T) {
		// One overlapped slot is contained, the other sticks out, so the
		// contained-overwrite shortcut must not apply.
		existing := []models.AvailabilitySlot{
			slot("a", 560, 580, "Gym"),
			slot("b", 640, 700, "Read"),
		}
		candidate := slot("c", 540, 660, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		assert.Len(t, out, 2)
		assert.Equal(t, candidate, out[0])
		assert.Equal(t, 660, out[1].Start)
		assert.Equal(t, 700, out[1].End)
		assert.Equal(t, "Read", out[1].Title)
	})

	t.Run("Coverage Is Preserved", func(t *testing.T) {
		// Every minute covered before the insert is still covered after.
		existing := []models.AvailabilitySlot{
			slot("a", 480, 540, "Gym"),
			slot("b", 600, 720, "Read"),
		}
		candidate := slot("c", 520, 640, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		covered := func(minute int, slots []models.AvailabilitySlot) bool {
			for _, s := range slots {
				if s.Start <= minute && minute < s.End {
					return true
				}
			}
			return false
		}
		for minute := 480; minute < 720; minute++ {
			assert.True(t, covered(minute, out), "minute %d lost coverage", minute)
		}
	})

	t.Run("Touching Slots Are Not Overlaps", func(t *testing.T) {
		existing := []models.AvailabilitySlot{slot("a", 480, 540, "Work")}
		candidate := slot("c", 540, 600, "Read")

		out := ResolveOverlap(candidate, existing)

		assert.Len(t, out, 2, "differing titles must not merge at the shared edge")
	})

	t.Run("Settled Slots Keep Their Grain", func(t *testing.T) {
		// An adjacent same-title insert stays a separate slot; only split
		// fragments get reunited with neighbors.
		existing := []models.AvailabilitySlot{slot("a", 480, 540, "Work")}
		candidate := slot("c", 540, 600, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "c", out[1].ID)
	})

	t.Run("Residual Reunites With Neighbor", func(t *testing.T) {
		// Existing 08:00-09:00 Gym and 09:00-11:00 Gym; inserting 10:00-11:00
		// Work cuts the second slot. Its 09:00-10:00 fragment merges back
		// into the untouched neighbor.
		existing := []models.AvailabilitySlot{
			slot("a", 480, 540, "Gym"),
			slot("b", 540, 660, "Gym"),
		}
		candidate := slot("c", 600, 660, "Work")

		out := ResolveOverlap(candidate, existing)

		assert.NoError(t, verifyNoOverlap(out))
		assert.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, 480, out[0].Start)
		assert.Equal(t, 600, out[0].End)
		assert.Equal(t, candidate, out[1])
	})
}

func TestMergeAdjacentIsIdempotent(t *testing.T) {
	fragment := slot("", 540, 600, "Work")
	slots := []models.AvailabilitySlot{
		slot("a", 480, 540, "Work"),
		fragment,
		slot("d", 600, 630, "Read"),
	}

	once := mergeAdjacent(slots)
	twice := mergeAdjacent(once)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	assert.Equal(t, "a", once[0].ID)
	assert.Equal(t, 480, once[0].Start)
	assert.Equal(t, 600, once[0].End)
}

func TestVerifyNoOverlap(t *testing.T) {
	t.Run("Clean Collection", func(t *testing.T) {
		slots := []models.AvailabilitySlot{
			slot("a", 480, 540, "Work"),
			slot("b", 540, 600, "Read"),
		}
		assert.NoError(t, verifyNoOverlap(slots))
	})

	t.Run("Overlapping Collection", func(t *testing.T) {
		slots := []models.AvailabilitySlot{
			slot("a", 480, 550, "Work"),
			slot("b", 540, 600, "Read"),
		}
		assert.Error(t, verifyNoOverlap(slots))
	})
}
