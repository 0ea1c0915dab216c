// File: services/availability/match_test.go
package availability

import (
	"testing"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/stretchr/testify/assert"
)

func userSlot(userID string, start, end int, title string, available bool) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:        userID + "-" + title,
		UserID:    userID,
		Date:      "2026-09-01",
		Start:     start,
		End:       end,
		Title:     title,
		Available: available,
	}
}

func TestCommonWindows(t *testing.T) {
	names := map[string]string{"a": "alice", "b": "bob", "c": "carol"}

	t.Run("Two Users Intersect", func(t *testing.T) {
		// alice 09:00-11:00 "Work", bob 10:00-12:00 "Study" → 10:00-11:00.
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 660, "Work", true)},
			"b": {userSlot("b", 600, 720, "Study", true)},
		}

		windows := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, false)

		assert.Len(t, windows, 1)
		w := windows[0]
		assert.Equal(t, "2026-09-01", w.Date)
		assert.Equal(t, 600, w.Start)
		assert.Equal(t, 660, w.End)
		assert.Equal(t, "10:00 - 11:00", w.Label)
		assert.Equal(t, []models.MatchUser{
			{UserID: "a", Username: "alice", Title: "Work"},
			{UserID: "b", Username: "bob", Title: "Study"},
		}, w.Users)
	})

	t.Run("Fewer Than Two Users", func(t *testing.T) {
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 660, "Work", true)},
		}

		windows := CommonWindows("2026-09-01", []string{"a"}, slots, names, false)

		assert.Empty(t, windows)
	})

	t.Run("Only One User Has Slots", func(t *testing.T) {
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 660, "Work", true)},
		}

		windows := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, false)

		assert.Empty(t, windows)
	})

	t.Run("No Intersection", func(t *testing.T) {
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 600, "Work", true)},
			"b": {userSlot("b", 600, 660, "Study", true)},
		}

		windows := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, false)

		assert.Empty(t, windows)
	})

	t.Run("Every User Must Cover The Window", func(t *testing.T) {
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 720, "Work", true)},
			"b": {userSlot("b", 540, 720, "Study", true)},
			"c": {userSlot("c", 600, 660, "Gym", true)},
		}

		windows := CommonWindows("2026-09-01", []string{"a", "b", "c"}, slots, names, false)

		assert.Len(t, windows, 1)
		assert.Equal(t, 600, windows[0].Start)
		assert.Equal(t, 660, windows[0].End)
		assert.Len(t, windows[0].Users, 3)
	})

	t.Run("Breakpoints Split Contiguous Windows", func(t *testing.T) {
		// bob's slot boundary at 10:00 splits the shared 09:00-11:00 span
		// even though both halves are common.
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 660, "Work", true)},
			"b": {
				userSlot("b", 540, 600, "Study", true),
				userSlot("b", 600, 660, "Reading", true),
			},
		}

		windows := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, false)

		assert.Len(t, windows, 2)
		assert.Equal(t, 540, windows[0].Start)
		assert.Equal(t, 600, windows[0].End)
		assert.Equal(t, "Study", windows[0].Users[1].Title)
		assert.Equal(t, 600, windows[1].Start)
		assert.Equal(t, 660, windows[1].End)
		assert.Equal(t, "Reading", windows[1].Users[1].Title)
	})

	t.Run("Available Only Filters Flagged Slots", func(t *testing.T) {
		slots := map[string][]models.AvailabilitySlot{
			"a": {userSlot("a", 540, 660, "Work", true)},
			"b": {userSlot("b", 600, 720, "Busy", false)},
		}

		all := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, false)
		assert.Len(t, all, 1)

		availableOnly := CommonWindows("2026-09-01", []string{"a", "b"}, slots, names, true)
		assert.Empty(t, availableOnly)
	})
}
