package almanac

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"weathergen/internal/climate"
	"weathergen/internal/timezone"
	"weathergen/internal/types"
)

// Almanac describes daylight at a climate's calibration city on a
// representative day of the season
type Almanac struct {
	City        string
	Coordinates types.Coords
	Timezone    string
	Date        time.Time

	// HasSunrise is false during polar night and midnight sun
	HasSunrise bool
	Sunrise    time.Time
	Sunset     time.Time

	// AlwaysUp marks midnight sun: no sunrise because the sun never sets
	AlwaysUp bool
}

// DaylightHours returns the hours between sunrise and sunset, 24 under
// midnight sun and 0 during polar night
func (a *Almanac) DaylightHours() float64 {
	if a.AlwaysUp {
		return 24
	}
	if !a.HasSunrise {
		return 0
	}
	return a.Sunset.Sub(a.Sunrise).Hours()
}

// TimezoneProvider resolves the local time zone of a coordinate
type TimezoneProvider interface {
	GetLocation(coords types.Coords) (*time.Location, error)
}

type Service interface {
	ForSeason(c climate.Climate, s climate.Season, year int) (*Almanac, error)
}

type almanacService struct {
	timezones TimezoneProvider
	logger    *slog.Logger
}

// NewAlmanacService creates a service using the shared tzf timezone lookup
func NewAlmanacService(logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewAlmanacServiceWithProvider(tzSvc, logger), nil
}

func NewAlmanacServiceWithProvider(timezones TimezoneProvider, logger *slog.Logger) Service {
	return &almanacService{
		timezones: timezones,
		logger:    logger.With("component", "almanac-service"),
	}
}

// horizonAltitude is the sun's altitude in radians at sunrise and sunset,
// allowing for refraction and the solar disc
const horizonAltitude = -0.833 * math.Pi / 180

// seasonMonths picks the mid-season month used as the representative date
var seasonMonths = map[climate.Season]time.Month{
	climate.Winter: time.January,
	climate.Spring: time.April,
	climate.Summer: time.July,
	climate.Fall:   time.October,
}

func (s *almanacService) ForSeason(c climate.Climate, season climate.Season, year int) (*Almanac, error) {
	params, err := climate.Lookup(c)
	if err != nil {
		return nil, err
	}
	month, ok := seasonMonths[season]
	if !ok {
		return nil, fmt.Errorf("%w: %d", climate.ErrUnknownSeason, int(season))
	}

	city := params.CalibrationCity
	loc, err := s.timezones.GetLocation(city.Coordinates)
	if err != nil {
		s.logger.Error("failed to determine timezone",
			"city", city.Name,
			"coordinates", city.Coordinates.String(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	date := time.Date(year, month, 15, 12, 0, 0, 0, loc)
	times := suncalc.GetTimes(date, city.Coordinates.Latitude, city.Coordinates.Longitude)

	almanac := &Almanac{
		City:        city.Name,
		Coordinates: city.Coordinates,
		Timezone:    loc.String(),
		Date:        date,
	}

	sunrise := times["sunrise"].Value
	sunset := times["sunset"].Value
	if sameDay(sunrise, date) && sameDay(sunset, date) && sunrise.Before(sunset) {
		almanac.HasSunrise = true
		almanac.Sunrise = sunrise.In(loc)
		almanac.Sunset = sunset.In(loc)
	} else {
		noon := times["solarNoon"].Value
		if !sameDay(noon, date) {
			noon = date
		}
		pos := suncalc.GetPosition(noon, city.Coordinates.Latitude, city.Coordinates.Longitude)
		almanac.AlwaysUp = pos.Altitude > horizonAltitude
		s.logger.Debug("no sunrise on representative date",
			"city", city.Name,
			"date", date.Format(time.DateOnly),
			"alwaysUp", almanac.AlwaysUp,
		)
	}

	return almanac, nil
}

// sameDay rejects the zero or NaN-derived times suncalc yields when the sun
// never crosses the horizon
func sameDay(t, noon time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := t.Sub(noon)
	return d > -12*time.Hour && d < 12*time.Hour
}
