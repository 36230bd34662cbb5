package main

import (
	"context"

	"weathergen/internal/climate"
)

// ClimateBody describes one climate archetype
type ClimateBody struct {
	Slug                   string  `json:"slug" example:"temperate-coastal"`
	Name                   string  `json:"name" example:"Temperate coastal"`
	TemperatureVariability float64 `json:"temperatureVariability" doc:"Standard deviation scaling factor"`
	Windiness              int     `json:"windiness" minimum:"1" maximum:"10"`
	City                   string  `json:"city" doc:"Real-world city the parameters were tuned against"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
}

type ListClimatesOutput struct {
	Body struct {
		Climates []ClimateBody `json:"climates"`
	}
}

func (app *App) handleListClimates(ctx context.Context, input *struct{}) (*ListClimatesOutput, error) {
	resp := &ListClimatesOutput{}
	for _, c := range climate.All() {
		params, err := climate.Lookup(c)
		if err != nil {
			return nil, err
		}
		resp.Body.Climates = append(resp.Body.Climates, ClimateBody{
			Slug:                   c.Slug(),
			Name:                   c.String(),
			TemperatureVariability: params.TemperatureVariability,
			Windiness:              params.Windiness,
			City:                   params.CalibrationCity.Name,
			Latitude:               params.CalibrationCity.Coordinates.Latitude,
			Longitude:              params.CalibrationCity.Coordinates.Longitude,
		})
	}
	return resp, nil
}
