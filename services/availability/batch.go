// File: services/availability/batch.go
package availability

import (
	"context"

	"github.com/brenonevs/prs-timemesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BatchCreate runs each item through the hour-slicing create independently.
// Partial failure is allowed; every item gets an outcome.
func (s *DefaultSlotService) BatchCreate(ctx context.Context, userID string, reqs []models.CreateSlotRequest) models.BatchCreateResponse {
	resp := models.BatchCreateResponse{
		Results: make([]models.BatchCreateItemResult, 0, len(reqs)),
	}
	for i, req := range reqs {
		created, err := s.Create(ctx, userID, req)
		if err != nil {
			resp.Results = append(resp.Results, models.BatchCreateItemResult{
				Index: i,
				Error: err.Error(),
			})
			continue
		}
		resp.CreatedCount++
		resp.Results = append(resp.Results, models.BatchCreateItemResult{
			Index: i,
			Slots: models.SlotDTOs(created),
		})
	}
	return resp
}

// BatchDelete removes slots by exact (date, start, end) match. Missing slots
// are reported per item and do not abort the batch.
func (s *DefaultSlotService) BatchDelete(ctx context.Context, userID string, keys []models.SlotKey) (models.BatchDeleteResponse, error) {
	resp := models.BatchDeleteResponse{Errors: []models.BatchDeleteError{}}
	for _, key := range keys {
		date, start, end, err := validateSlotKey(key)
		if err != nil {
			resp.Errors = append(resp.Errors, models.BatchDeleteError{Slot: key, Error: err.Error()})
			continue
		}

		unlock := s.locks.lock(userID, date)
		err = s.Repo.DeleteByKey(ctx, userID, date, start, end)
		unlock()

		if err == mongo.ErrNoDocuments {
			resp.Errors = append(resp.Errors, models.BatchDeleteError{Slot: key, Error: "Slot not found"})
			continue
		}
		if err != nil {
			return resp, err
		}
		resp.DeletedCount++
	}
	return resp, nil
}
