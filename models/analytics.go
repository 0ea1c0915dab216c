package models

// UserAvailabilityStats aggregates a user's stored slots.
type UserAvailabilityStats struct {
	TotalHours        float64 `json:"totalHours"`
	AverageDuration   float64 `json:"averageDurationMinutes"`
	MostCommonHour    *int    `json:"mostCommonHour"`
	MostCommonWeekday string  `json:"mostCommonWeekday,omitempty"`
}

// GroupInviteStats aggregates invites sent by one member of a group.
type GroupInviteStats struct {
	AcceptanceRate        float64 `json:"acceptanceRate"` // percentage, 0 when no invites sent
	AverageAcceptanceTime float64 `json:"averageAcceptanceTimeHours"`
}
