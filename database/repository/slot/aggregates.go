// File: database/repository/slot/aggregates.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brenonevs/prs-timemesh/models"
)

var weekdayNames = map[int]string{
	1: "Sunday",
	2: "Monday",
	3: "Tuesday",
	4: "Wednesday",
	5: "Thursday",
	6: "Friday",
	7: "Saturday",
}

// UserStats aggregates a user's stored slots: total committed hours, average
// slot duration, most common start hour and most common weekday.
func (r *mongoSlotRepo) UserStats(ctx context.Context, userID string) (*models.UserAvailabilityStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats := &models.UserAvailabilityStats{}

	durations := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$project", Value: bson.M{
			"duration": bson.M{"$subtract": bson.A{"$end", "$start"}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$duration"},
			"avg":   bson.M{"$avg": "$duration"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, durations)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate durations: %w", err)
	}
	var totals []struct {
		Total int     `bson:"total"`
		Avg   float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if len(totals) > 0 {
		stats.TotalHours = float64(totals[0].Total) / 60.0
		stats.AverageDuration = totals[0].Avg
	}

	topHour := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$floor": bson.M{"$divide": bson.A{"$start", 60}}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 1}},
	}
	cursor, err = r.coll.Aggregate(ctx, topHour)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate start hours: %w", err)
	}
	var hours []struct {
		Hour int `bson:"_id"`
	}
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if len(hours) > 0 {
		h := hours[0].Hour
		stats.MostCommonHour = &h
	}

	topWeekday := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$project", Value: bson.M{
			"weekday": bson.M{"$dayOfWeek": bson.M{"$dateFromString": bson.M{"dateString": "$date"}}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$weekday",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 1}},
	}
	cursor, err = r.coll.Aggregate(ctx, topWeekday)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekdays: %w", err)
	}
	var weekdays []struct {
		Weekday int `bson:"_id"`
	}
	if err := cursor.All(ctx, &weekdays); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	if len(weekdays) > 0 {
		stats.MostCommonWeekday = weekdayNames[weekdays[0].Weekday]
	}

	return stats, nil
}
