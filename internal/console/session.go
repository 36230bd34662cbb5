package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"weathergen/internal/almanac"
	"weathergen/internal/climate"
	"weathergen/internal/weather"
)

const (
	Welcome  = "Welcome to the random weather generator!"
	Farewell = "Thank you for using the random weather generator!"

	climatePrompt  = "Please select an option: "
	seasonPrompt   = "Please select a season: "
	invalidOption  = "Invalid option."
	otherInputExit = "Any other inputs will exit this program."
)

// Forecaster produces a forecast for a validated climate and season
type Forecaster interface {
	GenerateForecast(c climate.Climate, s climate.Season) (*weather.Forecast, error)
}

// AlmanacProvider is optional; a nil provider disables the almanac block
type AlmanacProvider interface {
	ForSeason(c climate.Climate, s climate.Season, year int) (*almanac.Almanac, error)
}

// Session runs one interactive forecast request over line-oriented I/O
type Session struct {
	in         *bufio.Scanner
	out        io.Writer
	forecaster Forecaster
	almanac    AlmanacProvider
	now        func() time.Time
	logger     *slog.Logger
}

func NewSession(in io.Reader, out io.Writer, forecaster Forecaster, logger *slog.Logger) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		forecaster: forecaster,
		now:        time.Now,
		logger:     logger.With("component", "console"),
	}
}

// WithAlmanac enables the sunrise/sunset block in the report
func (s *Session) WithAlmanac(provider AlmanacProvider) *Session {
	s.almanac = provider
	return s
}

// Run shows the climate menu, asks for a season and prints a forecast.
// Choosing anything but a listed climate ends the session without a forecast.
// It returns io.ErrUnexpectedEOF if input ends while a season is being chosen.
func (s *Session) Run() error {
	s.println(Welcome)
	for i, c := range climate.All() {
		s.printf("  %d. %s\n", i+1, c)
	}
	s.println(otherInputExit)

	line, ok := s.prompt(climatePrompt)
	c, err := climate.ClimateFromMenu(line)
	if !ok || err != nil {
		s.logger.Debug("no climate selected, exiting", "input", line)
		s.println(Farewell)
		return nil
	}

	season, err := s.selectSeason()
	if err != nil {
		return err
	}

	forecast, err := s.forecaster.GenerateForecast(c, season)
	if err != nil {
		return fmt.Errorf("failed to generate forecast: %w", err)
	}

	var a *almanac.Almanac
	if s.almanac != nil {
		a, err = s.almanac.ForSeason(c, season, s.now().Year())
		if err != nil {
			// almanac failures never block the forecast
			s.logger.Warn("failed to compute almanac", "climate", c.Slug(), "error", err)
			a = nil
		}
	}

	if err := WriteReport(s.out, forecast, a); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	s.println(Farewell)
	return nil
}

func (s *Session) selectSeason() (climate.Season, error) {
	for _, season := range climate.Seasons() {
		s.printf("  %d. %s\n", int(season), season.Title())
	}
	for {
		line, ok := s.prompt(seasonPrompt)
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		season, err := climate.SeasonFromMenu(line)
		if err == nil {
			return season, nil
		}
		s.println(invalidOption)
	}
}

// prompt writes the prompt and reads one line; ok is false at end of input
func (s *Session) prompt(p string) (string, bool) {
	s.printf("%s", p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			s.logger.Error("failed to read input", "error", err)
		}
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
