// File: handlers/match.go
package handlers

import (
	"net/http"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/availability"

	"github.com/gin-gonic/gin"
)

// MatchHandler exposes common-availability queries.
type MatchHandler struct {
	Match availability.MatchService
}

func NewMatchHandler(svc availability.MatchService) *MatchHandler {
	return &MatchHandler{Match: svc}
}

// MatchUsersHandler handles POST /api/availability/match.
func (h *MatchHandler) MatchUsersHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	windows, err := h.Match.MatchUsers(c.Request.Context(), req.UserIDs, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": models.MatchWindowDTOs(windows)})
}

// MatchGroupHandler handles POST /api/availability/group/:groupID/match.
func (h *MatchHandler) MatchGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.GroupMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	windows, err := h.Match.MatchGroup(c.Request.Context(), userID, c.Param("groupID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": models.MatchWindowDTOs(windows)})
}
