// File: database/repository/group/groups.go
package groupRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brenonevs/prs-timemesh/models"
)

func (r *mongoGroupRepo) CreateGroup(ctx context.Context, group models.Group) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.groups.InsertOne(ctx, group); err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

func (r *mongoGroupRepo) GetGroupByID(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	if err := r.groups.FindOne(ctx, bson.M{"id": groupID}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup removes the group and all of its memberships.
func (r *mongoGroupRepo) DeleteGroup(ctx context.Context, groupID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.groups.DeleteOne(ctx, bson.M{"id": groupID})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	if _, err := r.memberships.DeleteMany(ctx, bson.M{"groupId": groupID}); err != nil {
		return fmt.Errorf("failed to delete group memberships: %w", err)
	}
	return nil
}

// ListGroupsForUser returns groups where the user has an accepted membership.
func (r *mongoGroupRepo) ListGroupsForUser(ctx context.Context, userID string) ([]models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.memberships.Find(ctx, bson.M{"userId": userID, "accepted": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}
	defer cursor.Close(ctx)

	var memberships []models.GroupMembership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fmt.Errorf("error decoding memberships: %w", err)
	}
	if len(memberships) == 0 {
		return nil, nil
	}

	ids := make([]string, len(memberships))
	for i, m := range memberships {
		ids[i] = m.GroupID
	}
	groupCursor, err := r.groups.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	defer groupCursor.Close(ctx)

	var groups []models.Group
	if err := groupCursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding groups: %w", err)
	}
	return groups, nil
}

func (r *mongoGroupRepo) SetGroupOwner(ctx context.Context, groupID, newOwnerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.groups.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$set": bson.M{"ownerId": newOwnerID}},
	)
	if err != nil {
		return fmt.Errorf("failed to update group owner: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
