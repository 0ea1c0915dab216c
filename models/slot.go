package models

// AvailabilitySlot represents one labeled block of a user's day.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); the
// range is half-open, End is not included.
type AvailabilitySlot struct {
	ID        string `bson:"id" json:"id"`
	UserID    string `bson:"userId" json:"userId"`
	Date      string `bson:"date" json:"date"` // e.g., "2025-02-25"
	Start     int    `bson:"start" json:"start"`
	End       int    `bson:"end" json:"end"`
	Title     string `bson:"title" json:"title"`
	Available bool   `bson:"available" json:"available"`
}

// Overlaps reports whether the slot intersects [start, end) with nonzero measure.
func (s AvailabilitySlot) Overlaps(start, end int) bool {
	return s.Start < end && s.End > start
}

// CreateSlotRequest defines the payload for creating an availability slot.
// Times are wall-clock "HH:MM" (seconds accepted and ignored).
type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Available *bool  `json:"available"`
}

// SlotKey identifies a stored slot by its exact bounds.
type SlotKey struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// SlotDTO is the wire representation of a slot with formatted times.
type SlotDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
	Available bool   `json:"available"`
}

// DTO converts a stored slot into its wire representation.
func (s AvailabilitySlot) DTO() SlotDTO {
	return SlotDTO{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: FormatClock(s.Start),
		EndTime:   FormatClock(s.End),
		Title:     s.Title,
		Available: s.Available,
	}
}

// SlotDTOs converts a slice of slots for responses.
func SlotDTOs(slots []AvailabilitySlot) []SlotDTO {
	out := make([]SlotDTO, len(slots))
	for i, s := range slots {
		out[i] = s.DTO()
	}
	return out
}
