// File: services/tasks/tasks.go
package tasks

import (
	"encoding/json"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/hibiken/asynq"
)

const (
	TypeInviteNotify = "invite:notify"
	TypeSlotPurge    = "slots:purge"
)

// SlotPurgePayload carries the retention horizon for a purge run.
type SlotPurgePayload struct {
	RetentionDays int `json:"retentionDays"`
}

func NewInviteNotifyTask(payload models.InviteNotificationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInviteNotify, b), nil
}

func NewSlotPurgeTask(payload SlotPurgePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSlotPurge, b), nil
}
