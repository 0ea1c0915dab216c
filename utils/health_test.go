package utils

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestHealthMonitorSnapshotsImmediately(t *testing.T) {
	// Unconnected clients: every ping fails fast, but a snapshot must still
	// be taken right at startup instead of after the first tick.
	mongoClient, err := mongo.NewClient(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	assert.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	StartHealthMonitor([]*redis.Client{rdb}, mongoClient)

	assert.Eventually(t, func() bool {
		return !GetHealthStatus().CheckedAt.IsZero()
	}, 2*time.Second, 10*time.Millisecond)

	status := GetHealthStatus()
	assert.False(t, status.Mongo)
	assert.Len(t, status.Redis, 1)
	assert.False(t, status.Redis[0])
}
