package climate

import (
	"fmt"

	"weathergen/internal/types"
)

// SeasonProfile holds the sampling parameters for one season of one climate
type SeasonProfile struct {
	AverageHigh   float64 // °F
	HighLowSpread float64 // mean of (high - low - 5)
	PrecipChance  float64 // 0..1
}

// City is the real-world location a climate's constants were tuned against
type City struct {
	Name        string
	Coordinates types.Coords
}

// Parameters describes a climate archetype
type Parameters struct {
	Climate                Climate
	TemperatureVariability float64
	Windiness              int // 1..10
	CalibrationCity        City
	seasons                map[Season]SeasonProfile
}

// Season returns the profile for the given season
func (p Parameters) Season(s Season) (SeasonProfile, error) {
	profile, ok := p.seasons[s]
	if !ok {
		return SeasonProfile{}, fmt.Errorf("%w: %d", ErrUnknownSeason, int(s))
	}
	return profile, nil
}

func newParameters(c Climate, variability float64, windiness int, city City, winter, spring, summer, fall SeasonProfile) Parameters {
	return Parameters{
		Climate:                c,
		TemperatureVariability: variability,
		Windiness:              windiness,
		CalibrationCity:        city,
		seasons: map[Season]SeasonProfile{
			Winter: winter,
			Spring: spring,
			Summer: summer,
			Fall:   fall,
		},
	}
}

// table is built once and never mutated
var table = map[Climate]Parameters{
	TropicalRainforest: newParameters(TropicalRainforest, 5, 5,
		City{"Singapore", types.NewCoords(1.3521, 103.8198)},
		SeasonProfile{86, 7, .48}, SeasonProfile{89, 8, .5}, SeasonProfile{88, 7, .42}, SeasonProfile{88, 8, .52}),
	Desert: newParameters(Desert, 13, 3,
		City{"Phoenix", types.NewCoords(33.4484, -112.0740)},
		SeasonProfile{68, 17, .13}, SeasonProfile{85, 20, .06}, SeasonProfile{106, 17, .14}, SeasonProfile{89, 7, .08}),
	TemperateCoastal: newParameters(TemperateCoastal, 11, 2,
		City{"Seattle", types.NewCoords(47.6062, -122.3321)},
		SeasonProfile{47, 5, .59}, SeasonProfile{59, 12, .47}, SeasonProfile{76, 15, .16}, SeasonProfile{60, 9, .42}),
	TemperateContinental: newParameters(TemperateContinental, 19, 7,
		City{"Chicago", types.NewCoords(41.8781, -87.6298)},
		SeasonProfile{32, 9, .35}, SeasonProfile{59, 7, .37}, SeasonProfile{84, 11, .32}, SeasonProfile{63, 12, .33}),
	Steppe: newParameters(Steppe, 22, 10,
		City{"Rapid City", types.NewCoords(44.0805, -103.2310)},
		SeasonProfile{37, 19, .17}, SeasonProfile{58, 21, .32}, SeasonProfile{87, 24, .31}, SeasonProfile{61, 22, .23}),
	Taiga: newParameters(Taiga, 12, 5,
		City{"Yellowknife", types.NewCoords(62.4540, -114.3718)},
		SeasonProfile{-7, 9, .38}, SeasonProfile{33, 16, .17}, SeasonProfile{70, 20, .31}, SeasonProfile{34, 5, .43}),
	Tundra: newParameters(Tundra, 26, 8,
		City{"Utqiagvik", types.NewCoords(71.2906, -156.7886)},
		SeasonProfile{-7, 8, .15}, SeasonProfile{9, 9, .17}, SeasonProfile{47, 7, .29}, SeasonProfile{21, 3, .39}),
}

// Lookup returns the parameters for a climate
func Lookup(c Climate) (Parameters, error) {
	p, ok := table[c]
	if !ok {
		return Parameters{}, fmt.Errorf("%w: %d", ErrUnknownClimate, int(c))
	}
	return p, nil
}

// Profile resolves the climate and season in one step
func Profile(c Climate, s Season) (Parameters, SeasonProfile, error) {
	p, err := Lookup(c)
	if err != nil {
		return Parameters{}, SeasonProfile{}, err
	}
	profile, err := p.Season(s)
	if err != nil {
		return Parameters{}, SeasonProfile{}, err
	}
	return p, profile, nil
}
