// File: database/repository/slot/transaction.go
package slotRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brenonevs/prs-timemesh/models"
)

// ReplaceDaySlots swaps the entire slot set for one (user, date) inside a
// multi-document transaction, so a concurrent reader never observes the
// intermediate deleted state and an aborted request leaves nothing
// half-written.
func (r *mongoSlotRepo) ReplaceDaySlots(ctx context.Context, userID, date string, slots []models.AvailabilitySlot) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	persisted := make([]models.AvailabilitySlot, len(slots))
	for i, s := range slots {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.UserID = userID
		s.Date = date
		persisted[i] = s
	}
	sort.Slice(persisted, func(i, j int) bool { return persisted[i].Start < persisted[j].Start })

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.DeleteMany(sc, bson.M{"userId": userID, "date": date}); err != nil {
			return fmt.Errorf("clear day failed: %w", err)
		}
		if len(persisted) == 0 {
			return nil
		}
		docs := make([]interface{}, len(persisted))
		for i, s := range persisted {
			docs[i] = s
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert day slots failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("replace day transaction failed: %w", err)
	}

	return persisted, nil
}
