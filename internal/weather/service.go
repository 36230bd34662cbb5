package weather

import (
	"fmt"
	"log/slog"
	"math"

	"weathergen/internal/climate"
)

// minHighLowGap is the smallest allowed difference between high and low
const minHighLowGap = 5

type Service interface {
	// GenerateForecast samples a forecast for the given climate and season
	GenerateForecast(c climate.Climate, s climate.Season) (*Forecast, error)
}

type forecastService struct {
	sampler Sampler
	logger  *slog.Logger
}

// NewForecastService creates a service backed by a PCG generator seeded once
// with seed (zero means random)
func NewForecastService(seed uint64, logger *slog.Logger) Service {
	return NewForecastServiceWithSampler(NewRandSampler(seed), logger)
}

// NewForecastServiceWithSampler creates a service with a custom sampler.
// This is useful for testing with deterministic samplers.
func NewForecastServiceWithSampler(sampler Sampler, logger *slog.Logger) Service {
	return &forecastService{
		sampler: sampler,
		logger:  logger.With("component", "forecast-service"),
	}
}

// GenerateForecast draws every value in a fixed order so that a given sampler
// sequence always yields the same forecast
func (s *forecastService) GenerateForecast(c climate.Climate, season climate.Season) (*Forecast, error) {
	params, profile, err := climate.Profile(c, season)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve climate parameters: %w", err)
	}

	variability := params.TemperatureVariability

	high := floor(s.sampler.Normal(profile.AverageHigh, 0.4*variability))

	spread := floor(s.sampler.Normal(profile.HighLowSpread, 0.25*variability))
	if spread < 0 {
		spread = 0
	}
	low := high - minHighLowGap - spread

	wind := floor(float64(params.Windiness) * s.sampler.Uniform(0, 5))

	raining := s.sampler.Float64() < profile.PrecipChance

	chance := 0
	if raining {
		chance = 10 * floor(s.sampler.Normal(8, 2))
	}

	var humidity int
	if raining {
		humidity = floor(100 * s.sampler.Normal(0.8+profile.PrecipChance/4, 0.1))
	} else {
		humidity = floor(100 * s.sampler.Normal(0.3+profile.PrecipChance/2, 0.15))
	}

	pressure := math.Floor(100*(29.5+float64(high)/200+float64(humidity)/500+s.sampler.Uniform(0, 0.05))) / 100

	current := s.sampler.IntRange(low, high)

	feelsLike := float64(current) -
		WindChill(float64(current), float64(wind)) +
		HeatIndex(float64(current), float64(humidity))

	forecast := &Forecast{
		Climate:               c,
		Season:                season,
		Current:               current,
		FeelsLike:             int(feelsLike),
		High:                  high,
		Low:                   low,
		WindSpeed:             wind,
		Humidity:              humidity,
		Pressure:              pressure,
		Raining:               raining,
		ChanceOfPrecipitation: chance,
	}

	s.logger.Debug("generated forecast",
		"climate", c.Slug(),
		"season", season.String(),
		"high", high,
		"low", low,
		"current", current,
		"raining", raining,
	)

	return forecast, nil
}

func floor(v float64) int {
	return int(math.Floor(v))
}
