package climate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownClimate = errors.New("unknown climate")
	ErrUnknownSeason  = errors.New("unknown season")
)

// Climate identifies one of the fixed climate archetypes.
// Values are numbered in menu order.
type Climate int

const (
	TropicalRainforest Climate = iota + 1
	Desert
	TemperateCoastal
	TemperateContinental
	Steppe
	Taiga
	Tundra
)

var climateNames = map[Climate]string{
	TropicalRainforest:   "Tropical rainforest",
	Desert:               "Desert",
	TemperateCoastal:     "Temperate coastal",
	TemperateContinental: "Temperate continental",
	Steppe:               "Steppe",
	Taiga:                "Taiga",
	Tundra:               "Tundra",
}

// All returns every climate in menu order
func All() []Climate {
	return []Climate{
		TropicalRainforest,
		Desert,
		TemperateCoastal,
		TemperateContinental,
		Steppe,
		Taiga,
		Tundra,
	}
}

// Valid reports whether c is one of the known archetypes
func (c Climate) Valid() bool {
	_, ok := climateNames[c]
	return ok
}

func (c Climate) String() string {
	if name, ok := climateNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Climate(%d)", int(c))
}

// Slug returns the identifier used on the wire, e.g. "temperate-coastal"
func (c Climate) Slug() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "-")
}

// ParseClimate accepts either a slug or a display name, case-insensitively
func ParseClimate(s string) (Climate, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range All() {
		if needle == c.Slug() || needle == strings.ToLower(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClimate, s)
}

// ClimateFromMenu maps a menu selection ("1".."7") to a Climate
func ClimateFromMenu(s string) (Climate, error) {
	return fromMenu(strings.TrimSpace(s), len(climateNames), ErrUnknownClimate, func(n int) Climate { return Climate(n) })
}

// Season is one of the four seasons, numbered in menu order
type Season int

const (
	Spring Season = iota + 1
	Summer
	Fall
	Winter
)

var seasonNames = map[Season]string{
	Spring: "spring",
	Summer: "summer",
	Fall:   "fall",
	Winter: "winter",
}

// Seasons returns every season in menu order
func Seasons() []Season {
	return []Season{Spring, Summer, Fall, Winter}
}

func (s Season) Valid() bool {
	_, ok := seasonNames[s]
	return ok
}

func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Season(%d)", int(s))
}

// Title returns the capitalized season name used in menus
func (s Season) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func ParseSeason(s string) (Season, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "autumn" {
		return Fall, nil
	}
	for _, season := range Seasons() {
		if needle == season.String() {
			return season, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeason, s)
}

// SeasonFromMenu maps a menu selection ("1".."4") to a Season
func SeasonFromMenu(s string) (Season, error) {
	return fromMenu(strings.TrimSpace(s), len(seasonNames), ErrUnknownSeason, func(n int) Season { return Season(n) })
}

// fromMenu only accepts the exact strings "1".."count"; "01" or "+1" are rejected
func fromMenu[T any](s string, count int, sentinel error, convert func(int) T) (T, error) {
	var zero T
	for n := 1; n <= count; n++ {
		if s == fmt.Sprint(n) {
			return convert(n), nil
		}
	}
	return zero, fmt.Errorf("%w: option %q", sentinel, s)
}
