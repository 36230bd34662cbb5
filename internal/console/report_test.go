package console

import (
	"strings"
	"testing"

	"weathergen/internal/almanac"
	"weathergen/internal/climate"
	"weathergen/internal/weather"
)

func TestWriteReport(t *testing.T) {
	tests := []struct {
		name     string
		forecast *weather.Forecast
		almanac  *almanac.Almanac
		want     string
	}{
		{
			name: "rain with out of range values",
			forecast: &weather.Forecast{
				Climate:               climate.TemperateCoastal,
				Season:                climate.Winter,
				Current:               41,
				FeelsLike:             41,
				High:                  47,
				Low:                   37,
				WindSpeed:             2,
				Humidity:              104,
				Pressure:              29.9,
				Raining:               true,
				ChanceOfPrecipitation: 120,
			},
			want: "  Forecast for temperate coastal during winter:\n" +
				"Current temperature: 41 F\n" +
				"Feels like: 41 F\n" +
				"Wind speed: 2 mph\n" +
				"Humidity: 100%\n" +
				"Air pressure: 29.90 in\n" +
				"High today: 47 F\n" +
				"Low today: 37 F\n" +
				"There is a 100% chance of rain.\n",
		},
		{
			name: "snow at the threshold",
			forecast: &weather.Forecast{
				Climate:               climate.Taiga,
				Season:                climate.Fall,
				Current:               35,
				FeelsLike:             27,
				High:                  38,
				Low:                   30,
				WindSpeed:             12,
				Humidity:              -3,
				Pressure:              29.71,
				Raining:               true,
				ChanceOfPrecipitation: 60,
			},
			want: "  Forecast for taiga during fall:\n" +
				"Current temperature: 35 F\n" +
				"Feels like: 27 F\n" +
				"Wind speed: 12 mph\n" +
				"Humidity: 0%\n" +
				"Air pressure: 29.71 in\n" +
				"High today: 38 F\n" +
				"Low today: 30 F\n" +
				"There is a 60% chance of snow.\n",
		},
		{
			name: "dry day with polar almanac",
			forecast: &weather.Forecast{
				Climate:   climate.Tundra,
				Season:    climate.Winter,
				Current:   -12,
				FeelsLike: -30,
				High:      -8,
				Low:       -20,
				WindSpeed: 14,
				Humidity:  40,
				Pressure:  29.54,
			},
			almanac: &almanac.Almanac{City: "Utqiagvik", Timezone: "America/Anchorage"},
			want: "  Forecast for tundra during winter:\n" +
				"Current temperature: -12 F\n" +
				"Feels like: -30 F\n" +
				"Wind speed: 14 mph\n" +
				"Humidity: 40%\n" +
				"Air pressure: 29.54 in\n" +
				"High today: -8 F\n" +
				"Low today: -20 F\n" +
				"Modeled on: Utqiagvik (America/Anchorage)\n" +
				"The sun does not rise today.\n",
		},
		{
			name: "dry day under midnight sun",
			forecast: &weather.Forecast{
				Climate:   climate.Tundra,
				Season:    climate.Summer,
				Current:   44,
				FeelsLike: 44,
				High:      49,
				Low:       40,
				WindSpeed: 2,
				Humidity:  55,
				Pressure:  29.85,
			},
			almanac: &almanac.Almanac{City: "Utqiagvik", Timezone: "America/Anchorage", AlwaysUp: true},
			want: "  Forecast for tundra during summer:\n" +
				"Current temperature: 44 F\n" +
				"Feels like: 44 F\n" +
				"Wind speed: 2 mph\n" +
				"Humidity: 55%\n" +
				"Air pressure: 29.85 in\n" +
				"High today: 49 F\n" +
				"Low today: 40 F\n" +
				"Modeled on: Utqiagvik (America/Anchorage)\n" +
				"The sun does not set today.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			if err := WriteReport(&out, tt.forecast, tt.almanac); err != nil {
				t.Fatalf("WriteReport() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("WriteReport() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
