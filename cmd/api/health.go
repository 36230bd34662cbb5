package main

import (
	"context"
	"time"
)

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message    string    `json:"message" example:"pong" doc:"Response message"`
		ServerTime time.Time `json:"serverTime" doc:"Current server time"`
	}
}

func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.ServerTime = app.now().UTC()
	return resp, nil
}
