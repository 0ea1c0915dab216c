// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brenonevs/prs-timemesh/config"
	"github.com/brenonevs/prs-timemesh/cron"
	"github.com/brenonevs/prs-timemesh/database"
	"github.com/brenonevs/prs-timemesh/handlers"
	"github.com/brenonevs/prs-timemesh/routes"
	"github.com/brenonevs/prs-timemesh/services/analytics"
	"github.com/brenonevs/prs-timemesh/services/availability"
	"github.com/brenonevs/prs-timemesh/services/group"
	"github.com/brenonevs/prs-timemesh/services/notification"
	"github.com/brenonevs/prs-timemesh/services/user"
	"github.com/brenonevs/prs-timemesh/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	groupRepoPkg "github.com/brenonevs/prs-timemesh/database/repository/group"
	notificationRepoPkg "github.com/brenonevs/prs-timemesh/database/repository/notification"
	slotRepoPkg "github.com/brenonevs/prs-timemesh/database/repository/slot"
	userRepoPkg "github.com/brenonevs/prs-timemesh/database/repository/user"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Task queue client shared by services and the scheduler.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:        notificationRepo,
		AsynqClient: asynqClient,
	}
	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Cache: utils.GetAuthCacheClient(),
	}
	groupService := &group.DefaultGroupService{
		Repo:     groupRepo,
		Users:    userRepo,
		Cache:    utils.GetCacheClient(),
		Notifier: notificationService,
	}
	slotService := &availability.DefaultSlotService{Repo: slotRepo}
	matchService := &availability.DefaultMatchService{
		Slots:  slotRepo,
		Users:  userRepo,
		Groups: groupService,
	}
	analyticsService := &analytics.DefaultAnalyticsService{
		Slots:  slotRepo,
		Groups: groupRepo,
		Member: groupService,
	}

	// Background worker: invite delivery and nightly retention purge.
	cron.InitWorker(notificationRepo, slotRepo, asynqClient)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	userHandler := handlers.NewUserHandler(userService)
	availabilityHandler := handlers.NewAvailabilityHandler(slotService)
	matchHandler := handlers.NewMatchHandler(matchService)
	groupHandler := handlers.NewGroupHandler(groupService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		MeHandler:               userHandler.MeHandler,

		// Availability endpoints.
		CreateSlotHandler:       availabilityHandler.CreateSlotHandler,
		ListSlotsHandler:        availabilityHandler.ListSlotsHandler,
		UpdateSlotHandler:       availabilityHandler.UpdateSlotHandler,
		DeleteSlotHandler:       availabilityHandler.DeleteSlotHandler,
		BatchCreateSlotsHandler: availabilityHandler.BatchCreateSlotsHandler,
		BatchDeleteSlotsHandler: availabilityHandler.BatchDeleteSlotsHandler,

		// Match endpoints.
		MatchUsersHandler: matchHandler.MatchUsersHandler,
		MatchGroupHandler: matchHandler.MatchGroupHandler,

		// Group endpoints.
		CreateGroupHandler:       groupHandler.CreateGroupHandler,
		ListGroupsHandler:        groupHandler.ListGroupsHandler,
		DeleteGroupHandler:       groupHandler.DeleteGroupHandler,
		InviteHandler:            groupHandler.InviteHandler,
		AcceptInviteHandler:      groupHandler.AcceptInviteHandler,
		RejectInviteHandler:      groupHandler.RejectInviteHandler,
		PendingInvitesHandler:    groupHandler.PendingInvitesHandler,
		MembersHandler:           groupHandler.MembersHandler,
		RemoveMemberHandler:      groupHandler.RemoveMemberHandler,
		TransferOwnershipHandler: groupHandler.TransferOwnershipHandler,

		// Notification endpoints.
		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,

		// Analytics endpoints.
		UserStatsHandler:        analyticsHandler.UserStatsHandler,
		GroupInviteStatsHandler: analyticsHandler.GroupInviteStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
