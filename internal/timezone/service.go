package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"

	"weathergen/internal/types"
)

// Service resolves IANA time zones for coordinates
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
	GetLocation(coords types.Coords) (*time.Location, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service.
// tzf loads its polygon data into memory, so it is only built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name, e.g. "America/Chicago"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates %s", coords)
	}

	return timezone, nil
}

// GetLocation resolves the timezone and loads it from the system tz database
func (s *service) GetLocation(coords types.Coords) (*time.Location, error) {
	name, err := s.GetTimezone(coords)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
