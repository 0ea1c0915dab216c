// File: handlers/notifications.go
package handlers

import (
	"net/http"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes polled notifications.
type NotificationHandler struct {
	Notifications notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: svc}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.Notifications.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// MarkNotificationReadHandler handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Notifications.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
