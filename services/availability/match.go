// File: services/availability/match.go
package availability

import (
	"sort"

	"github.com/brenonevs/prs-timemesh/models"
)

// CommonWindows computes every maximal breakpoint-bounded sub-interval of the
// date where all listed users have a covering slot. Breakpoints are the
// distinct start and end values of all participating slots; each consecutive
// breakpoint pair is reported independently, so contiguous windows with
// identical per-user titles are not coalesced.
//
// With availableOnly set, slots flagged unavailable neither contribute
// breakpoints nor count as coverage.
//
// userIDs must already be de-duplicated; names maps user ids to usernames for
// annotation. Fewer than two listed users, or fewer than two users with any
// slot that day, yields no windows.
func CommonWindows(date string, userIDs []string, slotsByUser map[string][]models.AvailabilitySlot, names map[string]string, availableOnly bool) []models.MatchWindow {
	if len(userIDs) < 2 {
		return nil
	}

	eligible := make(map[string][]models.AvailabilitySlot, len(userIDs))
	var breakpoints []int
	usersWithSlots := 0
	for _, id := range userIDs {
		var slots []models.AvailabilitySlot
		for _, s := range slotsByUser[id] {
			if availableOnly && !s.Available {
				continue
			}
			slots = append(slots, s)
			breakpoints = append(breakpoints, s.Start, s.End)
		}
		if len(slots) > 0 {
			usersWithSlots++
		}
		eligible[id] = slots
	}
	if usersWithSlots < 2 {
		return nil
	}

	sort.Ints(breakpoints)
	breakpoints = dedupeInts(breakpoints)

	var windows []models.MatchWindow
	for i := 0; i+1 < len(breakpoints); i++ {
		lo, hi := breakpoints[i], breakpoints[i+1]
		users := make([]models.MatchUser, 0, len(userIDs))
		covered := true
		for _, id := range userIDs {
			slot, ok := coveringSlot(eligible[id], lo, hi)
			if !ok {
				covered = false
				break
			}
			users = append(users, models.MatchUser{
				UserID:   id,
				Username: names[id],
				Title:    slot.Title,
			})
		}
		if !covered {
			continue
		}
		windows = append(windows, models.MatchWindow{
			Date:  date,
			Start: lo,
			End:   hi,
			Label: models.RangeLabel(lo, hi),
			Users: users,
		})
	}
	return windows
}

// coveringSlot finds a slot spanning the whole of [lo, hi).
func coveringSlot(slots []models.AvailabilitySlot, lo, hi int) (models.AvailabilitySlot, bool) {
	for _, s := range slots {
		if s.Start <= lo && s.End >= hi {
			return s, true
		}
	}
	return models.AvailabilitySlot{}, false
}

func dedupeInts(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// dedupeStrings removes repeats while preserving first-seen order.
func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
