// File: services/availability/match_service.go
package availability

import (
	"context"
	"fmt"
	"time"

	slotRepo "github.com/brenonevs/prs-timemesh/database/repository/slot"
	userRepo "github.com/brenonevs/prs-timemesh/database/repository/user"
	"github.com/brenonevs/prs-timemesh/models"
)

// MaxMatchRangeDays caps the span of a date-range group match.
const MaxMatchRangeDays = 31

// DefaultMatchService implements MatchService. It only reads.
type DefaultMatchService struct {
	Slots  slotRepo.SlotRepository
	Users  userRepo.UserRepository
	Groups GroupResolver
}

func (s *DefaultMatchService) MatchUsers(ctx context.Context, userIDs []string, date string) ([]models.MatchWindow, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, ValidationError{Field: "date", Message: err.Error()}
	}
	if len(userIDs) == 0 {
		return nil, ValidationError{Field: "userIds", Message: "at least one user id is required"}
	}
	return s.match(ctx, dedupeStrings(userIDs), []string{date}, false)
}

func (s *DefaultMatchService) MatchGroup(ctx context.Context, requesterID, groupID string, req models.GroupMatchRequest) ([]models.MatchWindow, error) {
	dates, err := resolveDates(req)
	if err != nil {
		return nil, err
	}

	isMember, memberIDs, err := s.Groups.ResolveMembers(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ForbiddenError{Message: "you are not a member of this group"}
	}

	// Only slots flagged available participate in group matching.
	return s.match(ctx, memberIDs, dates, true)
}

func (s *DefaultMatchService) match(ctx context.Context, userIDs, dates []string, availableOnly bool) ([]models.MatchWindow, error) {
	slots, err := s.Slots.GetByUsersAndDates(ctx, userIDs, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot collections: %w", err)
	}

	names, err := s.Users.Usernames(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve usernames: %w", err)
	}

	byDate := make(map[string]map[string][]models.AvailabilitySlot, len(dates))
	for _, slot := range slots {
		byUser, ok := byDate[slot.Date]
		if !ok {
			byUser = make(map[string][]models.AvailabilitySlot)
			byDate[slot.Date] = byUser
		}
		byUser[slot.UserID] = append(byUser[slot.UserID], slot)
	}

	windows := []models.MatchWindow{}
	for _, date := range dates {
		windows = append(windows, CommonWindows(date, userIDs, byDate[date], names, availableOnly)...)
	}
	return windows, nil
}

// resolveDates expands a group match request into the list of dates to scan.
// Date and date-range are mutually exclusive; the range is inclusive and
// capped before any query executes.
func resolveDates(req models.GroupMatchRequest) ([]string, error) {
	hasDate := req.Date != ""
	hasRange := req.StartDate != "" || req.EndDate != ""

	switch {
	case hasDate && hasRange:
		return nil, ValidationError{Field: "date", Message: "provide either date or startDate/endDate, not both"}
	case hasDate:
		if _, err := models.ParseDate(req.Date); err != nil {
			return nil, ValidationError{Field: "date", Message: err.Error()}
		}
		return []string{req.Date}, nil
	case req.StartDate == "" || req.EndDate == "":
		return nil, ValidationError{Field: "startDate", Message: "both startDate and endDate are required for a range"}
	}

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, ValidationError{Field: "startDate", Message: err.Error()}
	}
	end, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, ValidationError{Field: "endDate", Message: err.Error()}
	}
	if end.Before(start) {
		return nil, ValidationError{Field: "endDate", Message: "endDate must not be before startDate"}
	}
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	if days > MaxMatchRangeDays {
		return nil, ValidationError{Field: "endDate", Message: "date range must not exceed 31 days"}
	}

	dates := make([]string, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(models.DateLayout))
	}
	return dates, nil
}
