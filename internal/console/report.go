package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"weathergen/internal/almanac"
	"weathergen/internal/weather"
)

// WriteReport renders a forecast in the fixed console format. The almanac
// block is omitted when a is nil.
func WriteReport(w io.Writer, f *weather.Forecast, a *almanac.Almanac) error {
	var b strings.Builder

	fmt.Fprintf(&b, "  Forecast for %s during %s:\n", strings.ToLower(f.Climate.String()), f.Season)
	fmt.Fprintf(&b, "Current temperature: %d F\n", f.Current)
	fmt.Fprintf(&b, "Feels like: %d F\n", f.FeelsLike)
	fmt.Fprintf(&b, "Wind speed: %d mph\n", f.WindSpeed)
	fmt.Fprintf(&b, "Humidity: %d%%\n", f.DisplayHumidity())
	fmt.Fprintf(&b, "Air pressure: %.2f in\n", f.Pressure)
	fmt.Fprintf(&b, "High today: %d F\n", f.High)
	fmt.Fprintf(&b, "Low today: %d F\n", f.Low)
	if f.Raining {
		fmt.Fprintf(&b, "There is a %d%% chance of %s.\n", f.DisplayChanceOfPrecipitation(), f.PrecipitationKind())
	}

	if a != nil {
		fmt.Fprintf(&b, "Modeled on: %s (%s)\n", a.City, a.Timezone)
		if a.HasSunrise {
			fmt.Fprintf(&b, "Sunrise: %s\n", a.Sunrise.Format(time.Kitchen))
			fmt.Fprintf(&b, "Sunset: %s\n", a.Sunset.Format(time.Kitchen))
		} else if a.AlwaysUp {
			b.WriteString("The sun does not set today.\n")
		} else {
			b.WriteString("The sun does not rise today.\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
