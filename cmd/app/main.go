package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"clubcentral/cmd/fx/achievement_fx"
	"clubcentral/cmd/fx/admin_request_fx"
	"clubcentral/cmd/fx/assist_fx"
	"clubcentral/cmd/fx/controllers_fx"
	"clubcentral/cmd/fx/dashboard_fx"
	"clubcentral/cmd/fx/event_fx"
	"clubcentral/cmd/fx/finance_fx"
	"clubcentral/cmd/fx/mail_fx"
	"clubcentral/cmd/fx/member_fx"
	"clubcentral/cmd/fx/memcache_fx"
	"clubcentral/cmd/fx/notification_fx"
	"clubcentral/cmd/fx/photo_fx"
	"clubcentral/cmd/fx/session_fx"
	"clubcentral/cmd/fx/slideshow_fx"
	"clubcentral/cmd/fx/store_fx"
	"clubcentral/cmd/fx/uploader_fx"
	"clubcentral/internal/api/controllers"
	"clubcentral/pkg/middleware"
	mem "clubcentral/pkg/memcache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		store_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		uploader_fx.Module,
		photo_fx.Module,
		event_fx.Module,
		member_fx.Module,
		finance_fx.Module,
		achievement_fx.Module,
		notification_fx.Module,
		admin_request_fx.Module,
		dashboard_fx.Module,
		slideshow_fx.Module,
		session_fx.Module,
		assist_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	photosController *controllers.PhotosController,
	eventsController *controllers.EventsController,
	membersController *controllers.MembersController,
	financeController *controllers.FinanceController,
	achievementsController *controllers.AchievementsController,
	notificationsController *controllers.NotificationsController,
	adminRequestsController *controllers.AdminRequestsController,
	sessionController *controllers.SessionController,
	assistController *controllers.AssistController,
	slideshowController *controllers.SlideshowController,
	dashboardController *controllers.DashboardController,
	revoked mem.RevokedTokenStore) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(corsConfig()))

	RegisterRoutes(r, revoked,
		photosController,
		eventsController,
		membersController,
		financeController,
		achievementsController,
		notificationsController,
		adminRequestsController,
		sessionController,
		assistController,
		slideshowController,
		dashboardController)

	return r
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

func RegisterRoutes(r *gin.Engine, revoked mem.RevokedTokenStore,
	photosController *controllers.PhotosController,
	eventsController *controllers.EventsController,
	membersController *controllers.MembersController,
	financeController *controllers.FinanceController,
	achievementsController *controllers.AchievementsController,
	notificationsController *controllers.NotificationsController,
	adminRequestsController *controllers.AdminRequestsController,
	sessionController *controllers.SessionController,
	assistController *controllers.AssistController,
	slideshowController *controllers.SlideshowController,
	dashboardController *controllers.DashboardController) {

	authRequired := middleware.JWTAuthMiddleware(revoked)
	memberOrAdmin := middleware.RoleMiddleware("member", "admin")
	adminOnly := middleware.RoleMiddleware("admin")

	// public read surface
	r.GET("/slideshow", slideshowController.FeedHandler)
	r.GET("/photos", photosController.ListPhotosHandler)
	r.GET("/events", eventsController.ListEventsHandler)
	r.GET("/achievements", achievementsController.ListAchievementsHandler)
	r.GET("/notifications", notificationsController.ListNotificationsHandler)
	r.GET("/members", membersController.ListMembersHandler)

	sessionGroup := r.Group("/session")
	sessionGroup.POST("/signin", sessionController.SignInHandler)
	sessionGroup.POST("/signout", authRequired, sessionController.SignOutHandler)
	sessionGroup.GET("", authRequired, sessionController.SessionHandler)

	// any signed-in member; a guest token authenticates but has no role here
	memberGroup := r.Group("/", authRequired, memberOrAdmin)
	memberGroup.POST("/admin-requests", adminRequestsController.SubmitAdminRequestHandler)
	memberGroup.POST("/assist/event", assistController.EventAssistHandler)
	memberGroup.POST("/assist/notification", assistController.NotificationAssistHandler)
	memberGroup.POST("/assist/description", assistController.DescriptionAssistHandler)

	adminGroup := r.Group("/", authRequired, adminOnly)

	adminGroup.POST("/photos", photosController.CreatePhotoHandler)
	adminGroup.POST("/photos/upload", photosController.UploadPhotoHandler)
	adminGroup.PATCH("/photos/:id", photosController.UpdatePhotoHandler)
	adminGroup.DELETE("/photos/:id", photosController.DeletePhotoHandler)

	adminGroup.POST("/events", eventsController.CreateEventHandler)
	adminGroup.PATCH("/events/:id", eventsController.UpdateEventHandler)
	adminGroup.DELETE("/events/:id", eventsController.DeleteEventHandler)

	adminGroup.POST("/members", membersController.CreateMemberHandler)
	adminGroup.PATCH("/members/:id", membersController.UpdateMemberHandler)
	adminGroup.DELETE("/members/:id", membersController.DeleteMemberHandler)

	adminGroup.GET("/donations", financeController.ListDonationsHandler)
	adminGroup.POST("/donations", financeController.CreateDonationHandler)
	adminGroup.PATCH("/donations/:id", financeController.UpdateDonationHandler)
	adminGroup.DELETE("/donations/:id", financeController.DeleteDonationHandler)

	adminGroup.GET("/collections", financeController.ListCollectionsHandler)
	adminGroup.POST("/collections", financeController.CreateCollectionHandler)
	adminGroup.PATCH("/collections/:id", financeController.UpdateCollectionHandler)
	adminGroup.DELETE("/collections/:id", financeController.DeleteCollectionHandler)

	adminGroup.GET("/expenses", financeController.ListExpensesHandler)
	adminGroup.POST("/expenses", financeController.CreateExpenseHandler)
	adminGroup.PATCH("/expenses/:id", financeController.UpdateExpenseHandler)
	adminGroup.DELETE("/expenses/:id", financeController.DeleteExpenseHandler)

	adminGroup.GET("/finance/summary", financeController.FinanceSummaryHandler)
	adminGroup.GET("/dashboard", dashboardController.ReportHandler)

	adminGroup.POST("/achievements", achievementsController.CreateAchievementHandler)
	adminGroup.PATCH("/achievements/:id", achievementsController.UpdateAchievementHandler)
	adminGroup.DELETE("/achievements/:id", achievementsController.DeleteAchievementHandler)

	adminGroup.POST("/notifications", notificationsController.CreateNotificationHandler)
	adminGroup.PATCH("/notifications/:id", notificationsController.UpdateNotificationHandler)
	adminGroup.DELETE("/notifications/:id", notificationsController.DeleteNotificationHandler)

	adminGroup.GET("/admin-requests", adminRequestsController.ListAdminRequestsHandler)
	adminGroup.PATCH("/admin-requests/:id/status", adminRequestsController.UpdateAdminRequestStatusHandler)
	adminGroup.DELETE("/admin-requests/:id", adminRequestsController.DeleteAdminRequestHandler)
}
