// File: handlers/analytics.go
package handlers

import (
	"net/http"

	"github.com/brenonevs/prs-timemesh/services/analytics"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes aggregate statistics endpoints.
type AnalyticsHandler struct {
	Analytics analytics.AnalyticsService
}

func NewAnalyticsHandler(svc analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: svc}
}

// UserStatsHandler handles GET /api/analytics/user.
func (h *AnalyticsHandler) UserStatsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.Analytics.UserStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GroupInviteStatsHandler handles GET /api/analytics/group/:groupID/invites.
func (h *AnalyticsHandler) GroupInviteStatsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.Analytics.GroupInviteStats(c.Request.Context(), userID, c.Param("groupID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
