// File: services/availability/overlap.go
package availability

import (
	"fmt"
	"sort"

	"github.com/brenonevs/prs-timemesh/models"
)

// ResolveOverlap reconciles a candidate slot against the current collection
// for the same (user, date) and returns the replacement collection, sorted by
// start, with the candidate present and no overlaps remaining.
//
// When every overlapped slot sits fully inside the candidate, the first one
// (lowest start) is widened to the candidate's bounds so its identity
// survives; any further contained slots are dropped. Otherwise the general
// split policy applies: overlapped slots are removed, the candidate is
// inserted, and the cut-off edges of each overlapped slot are re-emitted as
// residuals. Residuals carry an empty ID; persistence assigns one.
//
// The function is pure: callers own locking and persistence.
func ResolveOverlap(candidate models.AvailabilitySlot, existing []models.AvailabilitySlot) []models.AvailabilitySlot {
	out := make([]models.AvailabilitySlot, 0, len(existing)+2)
	var overlapped []models.AvailabilitySlot
	for _, e := range existing {
		if e.Overlaps(candidate.Start, candidate.End) {
			overlapped = append(overlapped, e)
		} else {
			out = append(out, e)
		}
	}
	sort.Slice(overlapped, func(i, j int) bool { return overlapped[i].Start < overlapped[j].Start })

	switch {
	case len(overlapped) == 0:
		out = append(out, candidate)

	case allContained(candidate, overlapped):
		// Contained-overwrite: widen the first overlapped slot to the
		// candidate's bounds, reusing its identity; the rest are subsumed.
		target := overlapped[0]
		target.Start = candidate.Start
		target.End = candidate.End
		target.Title = candidate.Title
		target.Available = candidate.Available
		out = append(out, target)

	default:
		for _, e := range overlapped {
			if e.Start < candidate.Start {
				out = append(out, residual(e, e.Start, candidate.Start))
			}
			if e.End > candidate.End {
				out = append(out, residual(e, candidate.End, e.End))
			}
		}
		out = append(out, candidate)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return mergeAdjacent(out)
}

func allContained(candidate models.AvailabilitySlot, overlapped []models.AvailabilitySlot) bool {
	for _, e := range overlapped {
		if e.Start < candidate.Start || e.End > candidate.End {
			return false
		}
	}
	return true
}

func residual(source models.AvailabilitySlot, start, end int) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		UserID:    source.UserID,
		Date:      source.Date,
		Start:     start,
		End:       end,
		Title:     source.Title,
		Available: source.Available,
	}
}

// mergeAdjacent reunites split fragments with their neighbors: consecutive
// slots that touch exactly and agree on title and availability are collapsed
// when at least one of the pair is a residual (empty ID). Settled slots never
// merge with each other; the stored grain from hour-sliced creates stays
// intact. Input must be sorted by start; the pass is re-run until stable, and
// running it on an already-merged collection is a no-op.
func mergeAdjacent(slots []models.AvailabilitySlot) []models.AvailabilitySlot {
	for changed := true; changed; {
		changed = false
		merged := make([]models.AvailabilitySlot, 0, len(slots))
		for _, s := range slots {
			if n := len(merged); n > 0 {
				prev := &merged[n-1]
				if prev.End == s.Start && prev.Title == s.Title && prev.Available == s.Available &&
					(prev.ID == "" || s.ID == "") {
					if prev.ID == "" {
						prev.ID = s.ID
					}
					prev.End = s.End
					changed = true
					continue
				}
			}
			merged = append(merged, s)
		}
		slots = merged
	}
	return slots
}

// verifyNoOverlap checks the stored-state invariant on a collection sorted by
// start. A violation is a programming defect, never an expected condition.
func verifyNoOverlap(slots []models.AvailabilitySlot) error {
	for i := 1; i < len(slots); i++ {
		if slots[i-1].End > slots[i].Start {
			return fmt.Errorf("stored slots overlap: [%d,%d) and [%d,%d)",
				slots[i-1].Start, slots[i-1].End, slots[i].Start, slots[i].End)
		}
	}
	return nil
}
