package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/notesfe/notes-api/internal/config"
	"github.com/notesfe/notes-api/pkg/database"
	"github.com/notesfe/notes-api/pkg/observability"
	"github.com/notesfe/notes-api/pkg/supabase"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Infrastructure holds the process-wide handles: provider clients, optional
// Redis, logger and telemetry. All of them are read-only after construction
// and safe for concurrent use.
type Infrastructure interface {
	Supabase() *supabase.Client
	SupabaseAdmin() *supabase.Client
	Redis() *database.Redis
	Logger() *zap.Logger
	MetricsHandler() http.Handler
	MeterProvider() *metric.MeterProvider

	Shutdown(ctx context.Context) error
}

type infrastructure struct {
	supabase       *supabase.Client
	supabaseAdmin  *supabase.Client
	redis          *database.Redis
	logger         *zap.Logger
	metricsHandler http.Handler
	meterProvider  *metric.MeterProvider
}

var _ Infrastructure = &infrastructure{}

func NewInfrastructure(ctx context.Context, cfg config.Config) (*infrastructure, error) {
	i := &infrastructure{}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	i.logger = logger

	i.supabase = supabase.New(cfg.Supabase.URL, cfg.Supabase.AnonKey, cfg.Supabase.RequestTimeout.Duration)

	if cfg.Supabase.HasServiceRoleKey() {
		i.supabaseAdmin = supabase.New(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, cfg.Supabase.RequestTimeout.Duration)
	} else {
		logger.Warn("no service role key configured, email auto-confirmation disabled")
	}

	if cfg.Redis.RateLimitEnabled() {
		rdb, err := database.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		i.redis = rdb
	} else {
		logger.Warn("no redis address configured, rate limiting disabled")
	}

	meterProvider, metricsHandler, err := observability.InitTelemetry("notes-api")
	if err != nil {
		if i.redis != nil {
			_ = i.redis.Close()
		}
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	i.meterProvider = meterProvider
	i.metricsHandler = metricsHandler

	return i, nil
}

func (i *infrastructure) Supabase() *supabase.Client {
	return i.supabase
}

// SupabaseAdmin returns the service-role client, nil when none is configured.
func (i *infrastructure) SupabaseAdmin() *supabase.Client {
	return i.supabaseAdmin
}

// Redis returns the rate limiting backend, nil when none is configured.
func (i *infrastructure) Redis() *database.Redis {
	return i.redis
}

func (i *infrastructure) Logger() *zap.Logger {
	return i.logger
}

func (i *infrastructure) MetricsHandler() http.Handler {
	return i.metricsHandler
}

func (i *infrastructure) MeterProvider() *metric.MeterProvider {
	return i.meterProvider
}

func (i *infrastructure) Shutdown(ctx context.Context) error {
	errs := make(chan error, 2)

	go func() {
		if i.redis != nil {
			errs <- i.redis.Close()
			return
		}
		errs <- nil
	}()

	go func() {
		errs <- observability.Shutdown(ctx, i.meterProvider, i.logger)
	}()

	return errors.Join(<-errs, <-errs)
}
