package routes

import (
	"docuflow-backend/internal/api/handlers"
	"docuflow-backend/internal/api/middleware"
	"docuflow-backend/internal/auth"
	"docuflow-backend/internal/config"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"
	"docuflow-backend/internal/routing"
	"docuflow-backend/internal/service"
	"docuflow-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	log := logger.New()

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	documentRequestRepo := repository.NewDocumentRequestRepository(db)
	routingRuleRepo := repository.NewRoutingRuleRepository(db)
	storageConfigRepo := repository.NewStorageConfigRepository(db)
	emailAccountRepo := repository.NewEmailAccountRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)

	// Initialize services
	engine := routing.NewEngine()
	storageFactory := storage.NewFactory(cfg)

	activityService := service.NewActivityService(activityLogRepo, log)
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	importService := service.NewImportService(employeeRepo, organizationRepo, activityService)
	storageConfigService := service.NewStorageConfigService(storageConfigRepo, storageFactory, activityService, validator, log)
	documentService := service.NewDocumentService(documentRepo, storageConfigRepo, storageConfigService, activityService, log)
	routingRuleService := service.NewRoutingRuleService(routingRuleRepo, storageConfigRepo, engine, validator)
	mailService := service.NewMailService(cfg, emailAccountRepo, log)
	documentRequestService := service.NewDocumentRequestService(
		documentRequestRepo,
		employeeRepo,
		documentRepo,
		emailAccountRepo,
		mailService,
		activityService,
		validator,
	)
	emailAccountService := service.NewEmailAccountService(emailAccountRepo, cfg, activityService, log)
	ingestService := service.NewIngestService(
		organizationRepo,
		emailAccountRepo,
		employeeRepo,
		documentRequestRepo,
		documentRepo,
		routingRuleRepo,
		storageConfigRepo,
		engine,
		storageConfigService,
		activityService,
		validator,
		log,
	)
	dashboardService := service.NewDashboardService(
		organizationRepo,
		employeeRepo,
		documentRequestRepo,
		documentRepo,
		routingRuleRepo,
		storageConfigRepo,
	)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(auth.NewConfig(cfg), organizationRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, importService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	documentRequestHandler := handlers.NewDocumentRequestHandler(documentRequestService)
	routingRuleHandler := handlers.NewRoutingRuleHandler(routingRuleService)
	storageConfigHandler := handlers.NewStorageConfigHandler(storageConfigService)
	emailAccountHandler := handlers.NewEmailAccountHandler(emailAccountService)
	activityHandler := handlers.NewActivityHandler(activityService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	ingestHandler := handlers.NewIngestHandler(ingestService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/api/auth")
	authRoutes.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
	{
		providerGroup := authRoutes.Group("/:provider")
		{
			providerGroup.GET("/start", authHandler.Start)
			providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
		}

		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.GET("/by-name/:name", organizationHandler.GetOrganizationByName)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.PUT("/:id/settings", organizationHandler.UpdateOrganizationSettings)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/dashboard", dashboardHandler.GetDashboardStats)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees) // Requires organization_id parameter
			employees.POST("", employeeHandler.CreateEmployee)
			employees.POST("/import/preview", employeeHandler.PreviewImport)
			employees.POST("/import", employeeHandler.CommitImport)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListDocuments) // Requires organization_id parameter
			documents.GET("/:id", documentHandler.GetDocument)
			documents.GET("/:id/download-url", documentHandler.GetDownloadURL)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
		}

		// Document request routes
		documentRequests := v1.Group("/document-requests")
		{
			documentRequests.GET("", documentRequestHandler.ListDocumentRequests) // Requires organization_id parameter
			documentRequests.POST("", documentRequestHandler.CreateDocumentRequest)
			documentRequests.GET("/:id", documentRequestHandler.GetDocumentRequest)
			documentRequests.PUT("/:id", documentRequestHandler.UpdateDocumentRequest)
			documentRequests.POST("/:id/send", documentRequestHandler.SendDocumentRequest)
			documentRequests.POST("/:id/remind", documentRequestHandler.RemindDocumentRequest)
			documentRequests.POST("/:id/cancel", documentRequestHandler.CancelDocumentRequest)
			documentRequests.DELETE("/:id", documentRequestHandler.DeleteDocumentRequest)
		}

		// Routing rule routes
		routingRules := v1.Group("/routing-rules")
		{
			routingRules.GET("", routingRuleHandler.ListRoutingRules) // Requires organization_id parameter
			routingRules.POST("", routingRuleHandler.CreateRoutingRule)
			routingRules.PUT("/reorder", routingRuleHandler.ReorderRoutingRules)
			routingRules.POST("/test", routingRuleHandler.TestRoutingRules)
			routingRules.GET("/:id", routingRuleHandler.GetRoutingRule)
			routingRules.PUT("/:id", routingRuleHandler.UpdateRoutingRule)
			routingRules.DELETE("/:id", routingRuleHandler.DeleteRoutingRule)
		}

		// Storage config routes
		storageConfigs := v1.Group("/storage-configs")
		{
			storageConfigs.GET("", storageConfigHandler.ListStorageConfigs) // Requires organization_id parameter
			storageConfigs.POST("", storageConfigHandler.CreateStorageConfig)
			storageConfigs.GET("/:id", storageConfigHandler.GetStorageConfig)
			storageConfigs.PUT("/:id", storageConfigHandler.UpdateStorageConfig)
			storageConfigs.POST("/:id/set-default", storageConfigHandler.SetDefaultStorageConfig)
			storageConfigs.POST("/:id/test", storageConfigHandler.TestStorageConfig)
			storageConfigs.DELETE("/:id", storageConfigHandler.DeleteStorageConfig)
		}

		// Email account routes
		emailAccounts := v1.Group("/email-accounts")
		{
			emailAccounts.GET("", emailAccountHandler.ListEmailAccounts) // Requires organization_id parameter
			emailAccounts.POST("/connect", emailAccountHandler.ConnectEmailAccount)
			emailAccounts.GET("/callback", emailAccountHandler.EmailAccountCallback)
			emailAccounts.GET("/:id", emailAccountHandler.GetEmailAccount)
			emailAccounts.POST("/:id/disconnect", emailAccountHandler.DisconnectEmailAccount)
			emailAccounts.POST("/:id/poll", emailAccountHandler.PollEmailAccount)
			emailAccounts.DELETE("/:id", emailAccountHandler.DeleteEmailAccount)
		}

		// Activity log routes
		activity := v1.Group("/activity")
		{
			activity.GET("", activityHandler.ListActivity) // Requires organization_id parameter
		}

		// Inbound email ingestion
		ingest := v1.Group("/ingest")
		ingest.Use(middleware.RateLimit(cfg.RateLimitPerMinute))
		{
			ingest.POST("/email", ingestHandler.IngestEmail)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
