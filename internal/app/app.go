package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/config"
	"github.com/notesfe/notes-api/internal/handler"
	"github.com/notesfe/notes-api/internal/repository"
	"github.com/notesfe/notes-api/internal/service"
	"github.com/notesfe/notes-api/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Supabase(), infra.SupabaseAdmin(), infra.Logger())

	loginService := service.NewLoginService(repos.Login, infra.Logger(), cfg.Security.BCryptCost)
	notesService := service.NewNotesService(repos.Notes, infra.Logger())

	var rateLimiter *service.RateLimiter
	if infra.Redis() != nil {
		rateLimiter = service.NewRateLimiter(infra.Redis())
	}

	loginHandler := handler.NewLoginHandler(loginService, infra.Logger())
	notesHandler := handler.NewNotesHandler(notesService, infra.Logger())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("notes-api"))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, loginHandler, notesHandler, loginService, rateLimiter, infra.MetricsHandler(), infra.Logger())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	loginHandler *handler.LoginHandler,
	notesHandler *handler.NotesHandler,
	loginService service.LoginService,
	rateLimiter *service.RateLimiter,
	metricsHandler http.Handler,
	logger *zap.Logger,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))

	limited := handler.RateLimitMiddleware(
		rateLimiter,
		cfg.Security.RateLimitRequests,
		cfg.Security.RateLimitWindow.Duration,
		handler.IPBasedKey,
	)

	api := router.Group("/api")
	{
		api.GET("/check", handler.HealthCheck)
		api.POST("/register", limited, loginHandler.Register)
		api.POST("/login", limited, loginHandler.Login)
		api.GET("/getUser", loginHandler.GetUser)

		notes := api.Group("/notes", handler.AuthMiddleware(loginService, logger))
		{
			notes.POST("", notesHandler.Create)
			notes.GET("", notesHandler.List)
			notes.GET("/:id", notesHandler.GetByID)
			notes.PUT("/:id", notesHandler.Update)
			notes.DELETE("/:id", notesHandler.Delete)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
