// File: database/repository/group/aggregates.go
package groupRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brenonevs/prs-timemesh/models"
)

// InviteStats aggregates invites sent by one member: acceptance rate and
// average latency between invite and acceptance.
func (r *mongoGroupRepo) InviteStats(ctx context.Context, groupID, inviterID string) (*models.GroupInviteStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	counts := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"groupId": groupID, "invitedBy": inviterID}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"total":    bson.M{"$sum": 1},
			"accepted": bson.M{"$sum": bson.M{"$cond": bson.A{"$accepted", 1, 0}}},
		}}},
	}
	cursor, err := r.memberships.Aggregate(ctx, counts)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invite counts: %w", err)
	}
	var countRows []struct {
		Total    int `bson:"total"`
		Accepted int `bson:"accepted"`
	}
	if err := cursor.All(ctx, &countRows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	stats := &models.GroupInviteStats{}
	if len(countRows) == 0 || countRows[0].Total == 0 {
		return stats, nil
	}
	stats.AcceptanceRate = float64(countRows[0].Accepted) / float64(countRows[0].Total) * 100

	latency := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"groupId":    groupID,
			"invitedBy":  inviterID,
			"accepted":   true,
			"acceptedAt": bson.M{"$ne": nil},
		}}},
		{{Key: "$project", Value: bson.M{
			"latencyMs": bson.M{"$subtract": bson.A{"$acceptedAt", "$invitedAt"}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$latencyMs"},
		}}},
	}
	cursor, err = r.memberships.Aggregate(ctx, latency)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate acceptance latency: %w", err)
	}
	var latencyRows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &latencyRows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if len(latencyRows) > 0 {
		stats.AverageAcceptanceTime = latencyRows[0].Avg / float64(time.Hour.Milliseconds())
	}

	return stats, nil
}
