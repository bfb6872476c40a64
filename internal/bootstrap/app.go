package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hrops/onboarding-admin/internal/config"
	"github.com/hrops/onboarding-admin/internal/database"
	"github.com/hrops/onboarding-admin/internal/handler"
	"github.com/hrops/onboarding-admin/internal/logger"
	"github.com/hrops/onboarding-admin/internal/mailer"
	"github.com/hrops/onboarding-admin/internal/repository"
	"github.com/hrops/onboarding-admin/internal/scheduler"
	"github.com/hrops/onboarding-admin/internal/service"
)

type App struct {
	Echo  *echo.Echo
	DB    *sql.DB
	Sched *scheduler.Scheduler
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize database connection
	dbConfig := database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		ConnTimeout:     config.DefaultEnvConfig.DB_CONN_TIMEOUT,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	// The mail mode is fixed here, once, from the resolved config.
	sender := mailer.NewFromConfig(ctx, mailer.Config{
		Host: config.DefaultEnvConfig.SMTP_HOST,
		Port: config.DefaultEnvConfig.SMTP_PORT,
		User: config.DefaultEnvConfig.SMTP_USER,
		Pass: config.DefaultEnvConfig.SMTP_PASS,
		From: config.DefaultEnvConfig.SMTP_FROM,
	})

	// Initialize dependencies
	colabRepo := repository.NewCollaboratorRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	colabSvc := service.NewCollaboratorService(colabRepo)
	alertSvc := service.NewAlertService(sessionRepo, sender)

	dashHandler := handler.NewDashboardHandler(colabSvc, sessionRepo, alertSvc)
	apiHandler := handler.NewAPIHandler(colabSvc)

	renderer, err := handler.NewTemplateRenderer("web/templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	a.Echo.Renderer = renderer

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(dashHandler, apiHandler)

	// Start the daily alert job
	a.Sched = scheduler.New(alertSvc)
	if err := a.Sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(dash *handler.DashboardHandler, api *handler.APIHandler) {
	a.Echo.GET("/", dash.Home)
	a.Echo.GET("/colaboradores", dash.Dashboard)
	a.Echo.GET("/colaboradores/exportar", dash.ExportCollaborators)
	a.Echo.POST("/colaboradores/crear", dash.CreateCollaborator)
	a.Echo.POST("/colaboradores/:id/marcar", dash.MarkOnboarding)
	a.Echo.POST("/colaboradores/:id/actualizar", dash.UpdateCollaborator)
	a.Echo.POST("/calendario/crear", dash.CreateSession)
	a.Echo.POST("/alertas/enviar", dash.SendAlerts)
	a.Echo.GET("/alertas/simular", dash.SimulateAlerts)
	a.Echo.POST("/alertas/enviar-uno", dash.SendOneAlert)

	apiGroup := a.Echo.Group("/api/colaboradores")
	apiGroup.POST("", api.CreateHandler)
	apiGroup.GET("", api.ListHandler)
	apiGroup.GET("/:id", api.GetHandler)
	apiGroup.PUT("/:id", api.UpdateHandler)
	apiGroup.DELETE("/:id", api.DeleteHandler)
}

func (a *App) Run() error {
	defer a.DB.Close()
	defer a.Sched.Stop()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
