package main

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"weathergen/internal/almanac"
	"weathergen/internal/climate"
	"weathergen/internal/types"
	"weathergen/internal/weather"
)

// GetForecastInput defines the query parameters for the forecast endpoint
type GetForecastInput struct {
	Climate string `query:"climate" required:"true" enum:"tropical-rainforest,desert,temperate-coastal,temperate-continental,steppe,taiga,tundra" doc:"Climate archetype"`
	Season  string `query:"season" required:"true" enum:"spring,summer,fall,autumn,winter" doc:"Season; autumn is an alias for fall"`
}

// AlmanacBody holds daylight times for the calibration city
type AlmanacBody struct {
	City          string     `json:"city"`
	Timezone      string     `json:"timezone"`
	Date          string     `json:"date" example:"2026-07-15"`
	Sunrise       *time.Time `json:"sunrise,omitempty"`
	Sunset        *time.Time `json:"sunset,omitempty"`
	DaylightHours float64    `json:"daylightHours"`
	AlwaysUp      bool       `json:"alwaysUp" doc:"Midnight sun: the sun stays above the horizon all day"`
}

// ForecastBody is a generated forecast with display-clamped percentages
type ForecastBody struct {
	Climate               string                  `json:"climate"`
	ClimateName           string                  `json:"climateName"`
	Season                string                  `json:"season"`
	Current               types.Temperature       `json:"current"`
	FeelsLike             types.Temperature       `json:"feelsLike"`
	High                  types.Temperature       `json:"high"`
	Low                   types.Temperature       `json:"low"`
	Wind                  types.Wind              `json:"wind"`
	Humidity              int                     `json:"humidity" minimum:"0" maximum:"100" doc:"Relative humidity in percent"`
	Pressure              types.Pressure          `json:"pressure"`
	Raining               bool                    `json:"raining"`
	ChanceOfPrecipitation int                     `json:"chanceOfPrecipitation" minimum:"0" maximum:"100"`
	PrecipitationKind     types.PrecipitationKind `json:"precipitationKind,omitempty" enum:"rain,snow"`
	Almanac               *AlmanacBody            `json:"almanac,omitempty"`
}

type GetForecastOutput struct {
	Body ForecastBody
}

func (app *App) handleGetForecast(ctx context.Context, input *GetForecastInput) (*GetForecastOutput, error) {
	c, err := climate.ParseClimate(input.Climate)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	season, err := climate.ParseSeason(input.Season)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	forecast, err := app.forecastService.GenerateForecast(c, season)
	if err != nil {
		if errors.Is(err, climate.ErrUnknownClimate) || errors.Is(err, climate.ErrUnknownSeason) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		app.logger.Error("failed to generate forecast",
			"climate", input.Climate,
			"season", input.Season,
			"error", err,
		)
		return nil, huma.Error500InternalServerError("failed to generate forecast")
	}

	resp := &GetForecastOutput{Body: newForecastBody(forecast)}

	if app.almanacService != nil {
		a, err := app.almanacService.ForSeason(c, season, app.now().Year())
		if err != nil {
			app.logger.Warn("failed to compute almanac", "climate", c.Slug(), "error", err)
		} else {
			resp.Body.Almanac = newAlmanacBody(a)
		}
	}

	return resp, nil
}

func newForecastBody(f *weather.Forecast) ForecastBody {
	body := ForecastBody{
		Climate:               f.Climate.Slug(),
		ClimateName:           f.Climate.String(),
		Season:                f.Season.String(),
		Current:               f.CurrentTemperature(),
		FeelsLike:             f.FeelsLikeTemperature(),
		High:                  f.HighTemperature(),
		Low:                   f.LowTemperature(),
		Wind:                  f.Wind(),
		Humidity:              f.DisplayHumidity(),
		Pressure:              f.Barometer(),
		Raining:               f.Raining,
		ChanceOfPrecipitation: f.DisplayChanceOfPrecipitation(),
	}
	if f.Raining {
		body.PrecipitationKind = f.PrecipitationKind()
	}
	return body
}

func newAlmanacBody(a *almanac.Almanac) *AlmanacBody {
	body := &AlmanacBody{
		City:          a.City,
		Timezone:      a.Timezone,
		Date:          a.Date.Format(time.DateOnly),
		DaylightHours: a.DaylightHours(),
		AlwaysUp:      a.AlwaysUp,
	}
	if a.HasSunrise {
		sunrise, sunset := a.Sunrise, a.Sunset
		body.Sunrise = &sunrise
		body.Sunset = &sunset
	}
	return body
}
