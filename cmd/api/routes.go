package main

import (
	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      "GET",
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-climates",
		Method:      "GET",
		Path:        "/climates",
		Summary:     "List climates",
		Description: "List every climate archetype with its calibration city",
		Tags:        []string{"climate"},
	}, app.handleListClimates)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-forecast",
		Method:      "GET",
		Path:        "/forecast",
		Summary:     "Generate a forecast",
		Description: "Generate a synthetic forecast for a climate archetype and season",
		Tags:        []string{"forecast"},
	}, app.handleGetForecast)
}
