package routes

import (
	"context"

	"voice-sales-backend/internal/api/handlers"
	"voice-sales-backend/internal/api/middleware"
	"voice-sales-backend/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, svc *Services) *gin.Engine {
	router := gin.New()

	// RequestID runs first so the access log and recovery see the id
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	checks := map[string]handlers.HealthCheck{
		"database": handlers.DatabaseCheck(db),
	}
	if svc.Queue != nil {
		checks["queue"] = func(context.Context) error { return svc.Queue.Ping() }
	}
	healthHandler := handlers.NewHealthHandler(Version, map[string]string{
		"telephony": cfg.TelephonyProvider,
		"textgen":   cfg.TextGenProvider,
		"dispatch":  dispatchMode(cfg),
	}, checks)
	leadHandler := handlers.NewLeadHandler(svc.Leads)
	playbookHandler := handlers.NewPlaybookHandler(svc.Playbooks)
	callHandler := handlers.NewCallHandler(svc.Calls)
	voiceHandler := handlers.NewVoiceHandler(svc.Conversation, svc.Calls, svc.Synthesizer)
	sentimentHandler := handlers.NewSentimentHandler(svc.Sentiment)
	followUpHandler := handlers.NewFollowUpHandler(svc.FollowUps)
	bulkHandler := handlers.NewBulkDispatchHandler(svc.Bulk, svc.Validator)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/bulk", leadHandler.BulkImportLeads)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
			leads.POST("/:id/calls", callHandler.InitiateLeadCall)
		}

		playbooks := v1.Group("/playbooks")
		{
			playbooks.GET("", playbookHandler.ListPlaybooks)
			playbooks.POST("", playbookHandler.CreatePlaybook)
			playbooks.GET("/:industry", playbookHandler.GetPlaybook)
		}

		calls := v1.Group("/calls")
		{
			calls.GET("", callHandler.ListCalls)
			calls.GET("/:id", callHandler.GetCall)
			calls.POST("/:id/end", callHandler.EndCallByID)
			calls.POST("/:id/turn", voiceHandler.Turn)
		}

		voice := v1.Group("/voice")
		{
			voice.POST("/initiate-call", callHandler.InitiateCall)
			voice.POST("/end-call", callHandler.EndCall)
			voice.POST("/bulk-call", bulkHandler.BulkCall)
			voice.POST("/analyze-sentiment", sentimentHandler.AnalyzeSentiment)
			voice.POST("/generate-follow-up", followUpHandler.GenerateFollowUp)
			voice.POST("/synthesize", voiceHandler.Synthesize)

			// telephony provider callbacks
			voice.POST("/webhook/:call_id", voiceHandler.Webhook)
			voice.POST("/status", voiceHandler.Status)
		}

		v1.GET("/analytics/dashboard", dashboardHandler.GetDashboard)
	}

	return router
}

func dispatchMode(cfg *config.Config) string {
	if cfg.RedisURL != "" {
		return "queue"
	}
	return "inline"
}
