package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"golang.org/x/time/rate"

	"weathergen/internal/almanac"
	"weathergen/internal/config"
	"weathergen/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	mux             *http.ServeMux
	api             huma.API
	logger          *slog.Logger
	limiter         *rate.Limiter
	forecastService weather.Service
	almanacService  almanac.Service
	now             func() time.Time
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	hc := huma.DefaultConfig("Weathergen API", "1.0.0")
	hc.Info.Description = "Synthetic weather forecasts for climate archetypes"
	hc.Servers = []*huma.Server{
		{URL: fmt.Sprintf("http://localhost%s", cfg.GetServerAddr()), Description: "Development server"},
	}

	api := humago.New(mux, hc)

	almanacService, err := almanac.NewAlmanacService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create almanac service: %w", err)
	}

	app := &App{
		mux:             mux,
		api:             api,
		logger:          logger,
		limiter:         rate.NewLimiter(rate.Limit(cfg.Server.RateLimit.RPS), cfg.Server.RateLimit.Burst),
		forecastService: weather.NewForecastService(cfg.Forecast.Seed, logger),
		almanacService:  almanacService,
		now:             time.Now,
	}

	logger.Info("application initialized",
		"rps", cfg.Server.RateLimit.RPS,
		"burst", cfg.Server.RateLimit.Burst,
	)

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Handler returns the rate limited root handler
func (app *App) Handler() http.Handler {
	return rateLimit(app.limiter, app.logger, app.mux)
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return http.ListenAndServe(addr, app.Handler())
}
