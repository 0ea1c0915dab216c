// File: services/notification/service.go
package notification

import (
	"context"
	"fmt"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/tasks"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	notificationRepo "github.com/brenonevs/prs-timemesh/database/repository/notification"
)

// NotificationService exposes polled notifications and queues invite
// notifications for asynchronous delivery.
type NotificationService interface {
	NotifyInvite(ctx context.Context, payload models.InviteNotificationPayload) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// DefaultNotificationService enqueues delivery through asynq and reads
// persisted notifications from Mongo.
type DefaultNotificationService struct {
	Repo        notificationRepo.NotificationRepository
	AsynqClient *asynq.Client
}

// NotifyInvite queues a group-invite notification task.
func (s *DefaultNotificationService) NotifyInvite(ctx context.Context, payload models.InviteNotificationPayload) error {
	if s.AsynqClient == nil {
		return fmt.Errorf("asynq client is not configured")
	}
	task, err := tasks.NewInviteNotifyTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build invite task: %w", err)
	}
	if _, err := s.AsynqClient.EnqueueContext(ctx, task); err != nil {
		utils.GetLogger().Error("Failed to enqueue invite task",
			zap.Error(err), zap.String("groupID", payload.GroupID))
		return fmt.Errorf("failed to enqueue invite task: %w", err)
	}
	return nil
}

// ListForUser returns the user's most recent notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	items, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

// MarkRead flags a single notification as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.Repo.MarkRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
