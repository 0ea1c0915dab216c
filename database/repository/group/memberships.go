// File: database/repository/group/memberships.go
package groupRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brenonevs/prs-timemesh/models"
)

func (r *mongoGroupRepo) CreateMembership(ctx context.Context, m models.GroupMembership) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.memberships.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}
	return nil
}

func (r *mongoGroupRepo) GetMembership(ctx context.Context, groupID, userID string) (*models.GroupMembership, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m models.GroupMembership
	err := r.memberships.FindOne(ctx, bson.M{"groupId": groupID, "userId": userID}).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoGroupRepo) AcceptMembership(ctx context.Context, groupID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	res, err := r.memberships.UpdateOne(ctx,
		bson.M{"groupId": groupID, "userId": userID, "accepted": false},
		bson.M{"$set": bson.M{"accepted": true, "acceptedAt": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to accept membership: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGroupRepo) DeleteMembership(ctx context.Context, groupID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.memberships.DeleteOne(ctx, bson.M{"groupId": groupID, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGroupRepo) ListMemberships(ctx context.Context, groupID string, acceptedOnly bool) ([]models.GroupMembership, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"groupId": groupID}
	if acceptedOnly {
		filter["accepted"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "invitedAt", Value: 1}})
	cursor, err := r.memberships.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}
	defer cursor.Close(ctx)

	var memberships []models.GroupMembership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fmt.Errorf("error decoding memberships: %w", err)
	}
	return memberships, nil
}

func (r *mongoGroupRepo) ListPendingForUser(ctx context.Context, userID string) ([]models.GroupMembership, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.memberships.Find(ctx, bson.M{"userId": userID, "accepted": false})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending invites: %w", err)
	}
	defer cursor.Close(ctx)

	var memberships []models.GroupMembership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fmt.Errorf("error decoding memberships: %w", err)
	}
	return memberships, nil
}

// AcceptedMemberIDs resolves the accepted membership of a group to a list of
// user ids, sorted by invite time for a stable order.
func (r *mongoGroupRepo) AcceptedMemberIDs(ctx context.Context, groupID string) ([]string, error) {
	memberships, err := r.ListMemberships(ctx, groupID, true)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(memberships))
	for i, m := range memberships {
		ids[i] = m.UserID
	}
	return ids, nil
}
