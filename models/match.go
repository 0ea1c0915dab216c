package models

// MatchUser ties a participating user to the slot title covering a window.
type MatchUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Title    string `json:"title"`
}

// MatchWindow is a computed sub-interval of a date where every queried user
// has a covering slot. It is never persisted.
type MatchWindow struct {
	Date  string      `json:"date"`
	Start int         `json:"start"`
	End   int         `json:"end"`
	Label string      `json:"label"` // e.g., "10:00 - 11:00"
	Users []MatchUser `json:"users"`
}

// MatchWindowDTO is the wire representation of a window with formatted times.
type MatchWindowDTO struct {
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Label     string      `json:"label"`
	Users     []MatchUser `json:"users"`
}

// DTO converts a computed window into its wire representation.
func (w MatchWindow) DTO() MatchWindowDTO {
	return MatchWindowDTO{
		Date:      w.Date,
		StartTime: FormatClock(w.Start),
		EndTime:   FormatClock(w.End),
		Label:     w.Label,
		Users:     w.Users,
	}
}

// MatchWindowDTOs converts a slice of windows for responses.
func MatchWindowDTOs(windows []MatchWindow) []MatchWindowDTO {
	out := make([]MatchWindowDTO, len(windows))
	for i, w := range windows {
		out[i] = w.DTO()
	}
	return out
}

// MatchRequest asks for common availability across an explicit user set.
type MatchRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
	Date    string   `json:"date" binding:"required"`
}

// GroupMatchRequest asks for common availability across a group's accepted
// members, for a single date or an inclusive date range (mutually exclusive).
type GroupMatchRequest struct {
	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
