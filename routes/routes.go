// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/brenonevs/prs-timemesh/handlers"
	"github.com/brenonevs/prs-timemesh/middleware"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterAvailabilityRoutes registers slot and matching endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/slots", hb.CreateSlotHandler)
		api.GET("/slots", hb.ListSlotsHandler)
		api.POST("/slots/batch", hb.BatchCreateSlotsHandler)
		api.DELETE("/slots/batch", hb.BatchDeleteSlotsHandler)
		api.PUT("/slots/:slotID", hb.UpdateSlotHandler)
		api.DELETE("/slots/:slotID", hb.DeleteSlotHandler)

		api.POST("/match", hb.MatchUsersHandler)
		api.POST("/group/:groupID/match", hb.MatchGroupHandler)
	}
}

// RegisterGroupRoutes registers group and invite endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateGroupHandler)
		api.GET("", hb.ListGroupsHandler)
		api.GET("/pending-invites", hb.PendingInvitesHandler)
		api.POST("/remove-member", hb.RemoveMemberHandler)
		api.POST("/transfer-ownership", hb.TransferOwnershipHandler)
		api.DELETE("/:groupID", hb.DeleteGroupHandler)
		api.POST("/:groupID/invite", hb.InviteHandler)
		api.POST("/:groupID/accept", hb.AcceptInviteHandler)
		api.POST("/:groupID/reject", hb.RejectInviteHandler)
		api.GET("/:groupID/members", hb.MembersHandler)
	}
}

// RegisterNotificationRoutes registers polled notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.POST("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterAnalyticsRoutes registers aggregate statistics endpoints.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/user", hb.UserStatsHandler)
		api.GET("/group/:groupID/invites", hb.GroupInviteStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterHealthRoute(r)
}
