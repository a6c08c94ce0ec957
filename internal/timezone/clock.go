package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/ringsaturn/tzf"
	"github.com/rs/zerolog/log"

	"weatherwise/weather-service/internal/weather"
)

// Finder maps coordinates to an IANA zone name. tzf.F satisfies it.
type Finder interface {
	GetTimezoneName(lng, lat float64) string
}

var (
	defaultFinder    tzf.F
	defaultFinderErr error
	finderOnce       sync.Once
)

// DefaultFinder loads the bundled timezone polygons once per process.
func DefaultFinder() (Finder, error) {
	finderOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			defaultFinderErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		defaultFinder = finder
	})
	if defaultFinderErr != nil {
		return nil, defaultFinderErr
	}
	return defaultFinder, nil
}

// Clock reports the calendar day at the given coordinates, falling back to UTC
// when no zone is known (open ocean, poles).
type Clock struct {
	finder Finder
	now    func() time.Time

	mu    sync.RWMutex
	zones map[string]*time.Location
}

func NewClock(finder Finder, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		finder: finder,
		now:    now,
		zones:  make(map[string]*time.Location),
	}
}

func (c *Clock) Today(lat, lon float64) weather.Date {
	return weather.DateOf(c.now().In(c.Location(lat, lon)))
}

func (c *Clock) Location(lat, lon float64) *time.Location {
	if c.finder == nil {
		return time.UTC
	}

	name := c.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return time.UTC
	}

	c.mu.RLock()
	loc, ok := c.zones[name]
	c.mu.RUnlock()
	if ok {
		return loc
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}

	c.mu.Lock()
	c.zones[name] = loc
	c.mu.Unlock()
	return loc
}
