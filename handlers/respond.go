// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/brenonevs/prs-timemesh/services/availability"
	"github.com/brenonevs/prs-timemesh/services/group"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// currentUserID reads the authenticated user id placed in the context by
// the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		utils.GetLogger().Error("Invalid user ID type in context", zap.Any("userID", v))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID type"})
		return "", false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var (
		validation availability.ValidationError
		forbidden  availability.ForbiddenError
		notFound   availability.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, group.ErrNotOwner{}) || errors.Is(err, group.ErrNotMember{}):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, group.ErrGroupNotFound{}) || errors.Is(err, group.ErrNoPendingInvite{}):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, group.ErrAlreadyInvited{}):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
