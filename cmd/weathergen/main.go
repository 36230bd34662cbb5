package main

import (
	"log"
	"log/slog"
	"os"
	_ "time/tzdata" // embedded zoneinfo for hosts without /usr/share/zoneinfo

	"weathergen/internal/almanac"
	"weathergen/internal/config"
	"weathergen/internal/console"
	"weathergen/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout carries the report, so logs go to stderr
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	forecasts := weather.NewForecastService(cfg.Forecast.Seed, logger)
	session := console.NewSession(os.Stdin, os.Stdout, forecasts, logger)

	if cfg.Report.Almanac {
		almanacService, err := almanac.NewAlmanacService(logger)
		if err != nil {
			logger.Warn("almanac disabled", "error", err)
		} else {
			session.WithAlmanac(almanacService)
		}
	}

	if err := session.Run(); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}
