// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/brenonevs/prs-timemesh/config"
	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	robcron "github.com/robfig/cron/v3"

	notificationRepo "github.com/brenonevs/prs-timemesh/database/repository/notification"
	slotRepo "github.com/brenonevs/prs-timemesh/database/repository/slot"
)

// InitWorker runs the async task worker in background and schedules the
// nightly retention purge.
func InitWorker(notifications notificationRepo.NotificationRepository, slots slotRepo.SlotRepository, client *asynq.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeInviteNotify, handleInviteTask(notifications))
	mux.HandleFunc(tasks.TypeSlotPurge, handlePurgeTask(slots))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	schedulePurge(client)
}

// handleInviteTask persists a group-invite notification so the invitee can
// poll it.
func handleInviteTask(notifications notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.InviteNotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InviteHandler] invalid payload: %v", err)
			return err
		}

		n := models.Notification{
			ID:        uuid.New().String(),
			UserID:    p.InviteeID,
			Type:      models.NotificationGroupInvite,
			Message:   p.InviterName + " invited you to join " + p.GroupName,
			GroupID:   p.GroupID,
			CreatedAt: time.Now(),
		}
		if err := notifications.Create(ctx, n); err != nil {
			log.Printf("[InviteHandler] failed to persist notification: %v", err)
			return err
		}
		return nil
	}
}

// handlePurgeTask deletes slots whose date lies beyond the retention horizon.
func handlePurgeTask(slots slotRepo.SlotRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.SlotPurgePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PurgeHandler] invalid payload: %v", err)
			return err
		}
		if p.RetentionDays <= 0 {
			return nil
		}

		cutoff := time.Now().AddDate(0, 0, -p.RetentionDays).Format(models.DateLayout)
		deleted, err := slots.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			log.Printf("[PurgeHandler] purge failed: %v", err)
			return err
		}
		log.Printf("[PurgeHandler] purged %d slots older than %s", deleted, cutoff)
		return nil
	}
}

// schedulePurge enqueues a purge task every night at 03:00.
func schedulePurge(client *asynq.Client) {
	c := robcron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		task, err := tasks.NewSlotPurgeTask(tasks.SlotPurgePayload{
			RetentionDays: config.AppConfig.SlotRetentionDays,
		})
		if err != nil {
			log.Printf("[Purge] failed to build purge task: %v", err)
			return
		}
		if _, err := client.Enqueue(task); err != nil {
			log.Printf("[Purge] failed to enqueue purge task: %v", err)
		}
	})
	if err != nil {
		log.Printf("[Purge] failed to schedule purge: %v", err)
		return
	}
	c.Start()
}
