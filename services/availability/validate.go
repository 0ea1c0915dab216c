// File: services/availability/validate.go
package availability

import (
	"strings"
	"unicode/utf8"

	"github.com/brenonevs/prs-timemesh/models"
)

const maxTitleLength = 100

// validatedSlot is a create/update request with times parsed and fields checked.
type validatedSlot struct {
	Date      string
	Start     int
	End       int
	Title     string
	Available bool
}

func validateSlotRequest(req models.CreateSlotRequest) (validatedSlot, error) {
	var v validatedSlot

	if _, err := models.ParseDate(req.Date); err != nil {
		return v, ValidationError{Field: "date", Message: err.Error()}
	}
	start, err := models.ParseClock(req.StartTime)
	if err != nil {
		return v, ValidationError{Field: "startTime", Message: err.Error()}
	}
	end, err := models.ParseClock(req.EndTime)
	if err != nil {
		return v, ValidationError{Field: "endTime", Message: err.Error()}
	}
	if start >= end {
		return v, ValidationError{Field: "startTime", Message: "start time must be before end time"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return v, ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return v, ValidationError{Field: "title", Message: "title must be at most 100 characters"}
	}

	v = validatedSlot{
		Date:      req.Date,
		Start:     start,
		End:       end,
		Title:     title,
		Available: true,
	}
	if req.Available != nil {
		v.Available = *req.Available
	}
	return v, nil
}

func validateSlotKey(key models.SlotKey) (date string, start, end int, err error) {
	if _, err := models.ParseDate(key.Date); err != nil {
		return "", 0, 0, ValidationError{Field: "date", Message: err.Error()}
	}
	start, err = models.ParseClock(key.StartTime)
	if err != nil {
		return "", 0, 0, ValidationError{Field: "startTime", Message: err.Error()}
	}
	end, err = models.ParseClock(key.EndTime)
	if err != nil {
		return "", 0, 0, ValidationError{Field: "endTime", Message: err.Error()}
	}
	return key.Date, start, end, nil
}
