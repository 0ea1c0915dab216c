// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/database"
	"github.com/brenonevs/prs-timemesh/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository stores polled notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	repo := &mongoNotificationRepo{coll: database.DB().Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notification indexes: %v\n", err)
	}
	return repo
}
