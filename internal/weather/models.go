package weather

import (
	"weathergen/internal/climate"
	"weathergen/internal/types"
)

// Forecast is one generated set of weather values. Humidity and
// ChanceOfPrecipitation hold the raw sampled values, which may fall outside
// [0, 100]; use the Display accessors when presenting them.
type Forecast struct {
	Climate climate.Climate
	Season  climate.Season

	Current   int // °F
	FeelsLike int // °F
	High      int // °F
	Low       int // °F

	WindSpeed int     // mph
	Humidity  int     // percent, unclamped
	Pressure  float64 // inches of mercury, two decimals

	Raining               bool
	ChanceOfPrecipitation int // percent in steps of 10, unclamped
}

// DisplayHumidity returns humidity clamped into [0, 100]
func (f *Forecast) DisplayHumidity() int {
	return clampPercent(f.Humidity)
}

// DisplayChanceOfPrecipitation returns the chance of precipitation clamped into [0, 100]
func (f *Forecast) DisplayChanceOfPrecipitation() int {
	return clampPercent(f.ChanceOfPrecipitation)
}

// PrecipitationKind reports whether precipitation would fall as rain or snow
// at the current temperature. Only meaningful when Raining is set.
func (f *Forecast) PrecipitationKind() types.PrecipitationKind {
	return types.PrecipitationKindAt(float64(f.Current))
}

func (f *Forecast) CurrentTemperature() types.Temperature {
	return types.NewTemperatureFromFahrenheit(float64(f.Current))
}

func (f *Forecast) FeelsLikeTemperature() types.Temperature {
	return types.NewTemperatureFromFahrenheit(float64(f.FeelsLike))
}

func (f *Forecast) HighTemperature() types.Temperature {
	return types.NewTemperatureFromFahrenheit(float64(f.High))
}

func (f *Forecast) LowTemperature() types.Temperature {
	return types.NewTemperatureFromFahrenheit(float64(f.Low))
}

func (f *Forecast) Wind() types.Wind {
	return types.NewWindFromMph(float64(f.WindSpeed))
}

func (f *Forecast) Barometer() types.Pressure {
	return types.NewPressureFromInchesHg(f.Pressure)
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
