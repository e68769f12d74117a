package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	contractapp "github.com/franq/backend/internal/application/contract"
	franchiseapp "github.com/franq/backend/internal/application/franchise"
	marketingapp "github.com/franq/backend/internal/application/marketing"
	pipelineapp "github.com/franq/backend/internal/application/pipeline"
	recoveryapp "github.com/franq/backend/internal/application/recovery"
	"github.com/franq/backend/internal/infrastructure/ai"
	"github.com/franq/backend/internal/infrastructure/auth"
	"github.com/franq/backend/internal/infrastructure/cache"
	"github.com/franq/backend/internal/infrastructure/config"
	"github.com/franq/backend/internal/infrastructure/event"
	"github.com/franq/backend/internal/infrastructure/logger"
	"github.com/franq/backend/internal/infrastructure/persistence"
	"github.com/franq/backend/internal/infrastructure/telemetry"
	"github.com/franq/backend/internal/interfaces/http/handler"
	"github.com/franq/backend/internal/interfaces/http/middleware"
	"github.com/franq/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Franchise Network Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing (optional)
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithGormLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Query tracing (optional)
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
		log.Info("Database query tracing enabled")
	}

	// Initialize repositories
	leadRepo := persistence.NewGormLeadRepository(db.DB)
	franchiseRepo := persistence.NewGormFranchiseRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	royaltyInvoiceRepo := persistence.NewGormRoyaltyInvoiceRepository(db.DB)
	recoveryCaseRepo := persistence.NewGormRecoveryCaseRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	contractTemplateRepo := persistence.NewGormContractTemplateRepository(db.DB)

	// Event bus for cross-context integration
	eventBus := event.NewInMemoryEventBus(log)

	// Analysis result store (memory or redis, per config)
	analysisStore, err := cache.NewAnalysisStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize analysis store", zap.Error(err))
	}

	// Candidate analyzer backed by the OpenAI API
	analyzer := ai.NewOpenAIAnalyzer(cfg.OpenAI, log)

	// Initialize application services
	leadService := pipelineapp.NewLeadService(leadRepo, nil, eventBus, log)
	conversionService := pipelineapp.NewConversionService(leadRepo, franchiseRepo, eventBus, log)
	analysisService := pipelineapp.NewAnalysisService(leadRepo, analyzer, analysisStore, log)
	franchiseService := franchiseapp.NewFranchiseService(franchiseRepo, eventBus, log)
	financeService := franchiseapp.NewFinanceService(franchiseRepo, transactionRepo, log)
	royaltyService := franchiseapp.NewRoyaltyService(franchiseRepo, royaltyInvoiceRepo, log)
	caseService := recoveryapp.NewCaseService(recoveryCaseRepo, franchiseRepo, log)
	campaignService := marketingapp.NewCampaignService(campaignRepo, log)
	templateService := contractapp.NewTemplateService(contractTemplateRepo, leadRepo, log)

	// Leads entering in_analysis get an automatic candidate analysis
	stageMovedHandler := pipelineapp.NewStageMovedAnalysisHandler(analysisService, log)
	eventBus.Subscribe(stageMovedHandler)
	log.Info("Event handlers registered",
		zap.Strings("stage_moved_events", stageMovedHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// JWT service for API authentication
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	leadHandler := handler.NewLeadHandler(leadService, conversionService, analysisService)
	franchiseHandler := handler.NewFranchiseHandler(franchiseService)
	financeHandler := handler.NewFinanceHandler(financeService)
	royaltyHandler := handler.NewRoyaltyHandler(royaltyService)
	recoveryHandler := handler.NewRecoveryHandler(caseService)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	contractHandler := handler.NewContractHandler(templateService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// tracing, security headers, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication for API routes with public endpoints skipped
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Franchisee lead pipeline
	pipelineRoutes := router.NewDomainGroup("pipeline", "/pipeline")
	pipelineRoutes.POST("/leads", leadHandler.Create)
	pipelineRoutes.GET("/leads", leadHandler.List)
	pipelineRoutes.GET("/board", leadHandler.Board)
	pipelineRoutes.GET("/leads/:id", leadHandler.GetByID)
	pipelineRoutes.POST("/leads/:id/move", leadHandler.MoveStage)
	pipelineRoutes.PUT("/leads/:id/documents/:document_id", leadHandler.SetDocumentStatus)
	pipelineRoutes.POST("/leads/:id/notes", leadHandler.AddNote)
	pipelineRoutes.GET("/leads/:id/notes", leadHandler.ListNotes)
	pipelineRoutes.POST("/leads/:id/convert", leadHandler.Convert)
	pipelineRoutes.POST("/leads/:id/analysis", leadHandler.RequestAnalysis)
	pipelineRoutes.GET("/leads/:id/analysis", leadHandler.LatestAnalysis)

	// Franchise units, their ledgers and royalty invoices
	franchiseRoutes := router.NewDomainGroup("franchise", "/franchises")
	franchiseRoutes.GET("", franchiseHandler.List)
	franchiseRoutes.GET("/:id", franchiseHandler.GetByID)
	franchiseRoutes.PUT("/:id/status", franchiseHandler.UpdateStatus)
	franchiseRoutes.POST("/:id/team", franchiseHandler.AddTeamMember)
	franchiseRoutes.POST("/:id/transactions", financeHandler.RecordTransaction)
	franchiseRoutes.GET("/:id/transactions", financeHandler.ListTransactions)
	franchiseRoutes.GET("/:id/income-statement", financeHandler.IncomeStatement)
	franchiseRoutes.POST("/:id/royalties", royaltyHandler.Generate)
	franchiseRoutes.GET("/:id/royalties", royaltyHandler.ListByFranchise)

	// Royalty invoice lifecycle
	royaltyRoutes := router.NewDomainGroup("royalty", "/royalties")
	royaltyRoutes.POST("/:invoice_id/pay", royaltyHandler.Pay)
	royaltyRoutes.POST("/:invoice_id/cancel", royaltyHandler.Cancel)
	royaltyRoutes.POST("/:invoice_id/overdue", royaltyHandler.MarkOverdue)

	// Credit recovery
	recoveryRoutes := router.NewDomainGroup("recovery", "/recovery")
	recoveryRoutes.POST("/cases", recoveryHandler.OpenCase)
	recoveryRoutes.GET("/cases", recoveryHandler.ListCases)
	recoveryRoutes.GET("/cases/:id", recoveryHandler.GetCase)
	recoveryRoutes.POST("/cases/:id/move", recoveryHandler.MoveCase)
	recoveryRoutes.POST("/cases/:id/settle", recoveryHandler.SettleCase)
	recoveryRoutes.POST("/cases/:id/notes", recoveryHandler.AddNote)
	recoveryRoutes.GET("/cases/:id/notes", recoveryHandler.ListNotes)

	// Marketing campaigns
	marketingRoutes := router.NewDomainGroup("marketing", "/marketing")
	marketingRoutes.POST("/campaigns", campaignHandler.Create)
	marketingRoutes.GET("/campaigns", campaignHandler.List)
	marketingRoutes.GET("/campaigns/:id", campaignHandler.GetByID)
	marketingRoutes.POST("/campaigns/:id/activate", campaignHandler.Activate)
	marketingRoutes.POST("/campaigns/:id/finish", campaignHandler.Finish)
	marketingRoutes.POST("/campaigns/:id/cancel", campaignHandler.Cancel)

	// Contract templates
	contractRoutes := router.NewDomainGroup("contract", "/contracts")
	contractRoutes.POST("/templates", contractHandler.Create)
	contractRoutes.GET("/templates", contractHandler.List)
	contractRoutes.GET("/templates/:id", contractHandler.GetByID)
	contractRoutes.PUT("/templates/:id/body", contractHandler.UpdateBody)
	contractRoutes.POST("/templates/:id/deactivate", contractHandler.Deactivate)
	contractRoutes.POST("/templates/:id/render", contractHandler.RenderForLead)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(pipelineRoutes).
		Register(franchiseRoutes).
		Register(royaltyRoutes).
		Register(recoveryRoutes).
		Register(marketingRoutes).
		Register(contractRoutes).
		Register(systemRoutes)

	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight candidate analyses publish their results
	analysisService.Flush()

	log.Info("Server exited gracefully")
}
