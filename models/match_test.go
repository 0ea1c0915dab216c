// File: models/match_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchWindowDTO(t *testing.T) {
	w := MatchWindow{
		Date:  "2026-09-01",
		Start: 600,
		End:   660,
		Label: "10:00 - 11:00",
		Users: []MatchUser{{UserID: "a", Username: "alice", Title: "Work"}},
	}

	t.Run("Times Are Formatted", func(t *testing.T) {
		dto := w.DTO()
		assert.Equal(t, "10:00", dto.StartTime)
		assert.Equal(t, "11:00", dto.EndTime)
		assert.Equal(t, "2026-09-01", dto.Date)
		assert.Equal(t, w.Users, dto.Users)
	})

	t.Run("Wire Shape Carries No Raw Minutes", func(t *testing.T) {
		data, err := json.Marshal(w.DTO())
		assert.NoError(t, err)

		var decoded map[string]interface{}
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "10:00", decoded["startTime"])
		assert.Equal(t, "11:00", decoded["endTime"])
		assert.NotContains(t, decoded, "start")
		assert.NotContains(t, decoded, "end")
	})
}

func TestMatchWindowDTOs(t *testing.T) {
	t.Run("Nil Input Yields Empty Slice", func(t *testing.T) {
		dtos := MatchWindowDTOs(nil)
		assert.NotNil(t, dtos)
		assert.Len(t, dtos, 0)
	})
}
