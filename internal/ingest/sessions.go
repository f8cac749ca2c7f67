package ingest

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// SessionCache keeps loaded sessions in a bounded LRU keyed by
// (year, round, session type). Sessions are immutable once loaded, so a stale
// or duplicate concurrent load of the same key is harmless; the LRU is
// internally synchronized and the loser simply overwrites an identical value.
type SessionCache struct {
	loader *Loader
	lru    *lru.Cache[string, *models.Session]
}

func NewSessionCache(loader *Loader, size int) (*SessionCache, error) {
	cache, err := lru.New[string, *models.Session](size)
	if err != nil {
		return nil, err
	}
	return &SessionCache{loader: loader, lru: cache}, nil
}

// Session returns the cached session for the key, loading it on a miss.
func (c *SessionCache) Session(ctx context.Context, year, race int, sessionType string) (*models.Session, error) {
	key := fmt.Sprintf("%d_%d_%s", year, race, sessionType)

	if s, ok := c.lru.Get(key); ok {
		logrus.WithField("key", key).Debug("using cached session")
		return s, nil
	}

	logrus.WithFields(logrus.Fields{
		"year":    year,
		"race":    race,
		"session": sessionType,
	}).Info("loading session (not cached)")

	s, err := c.loader.LoadSession(ctx, year, race, sessionType)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, s)
	return s, nil
}

// Schedule passes through to the loader; schedules are already cached on disk.
func (c *SessionCache) Schedule(ctx context.Context, year int) ([]models.RaceInfo, error) {
	return c.loader.Schedule(ctx, year)
}

// LapTelemetry passes through to the loader; telemetry payloads are large and
// per-lap, so they stay out of the in-memory session cache.
func (c *SessionCache) LapTelemetry(ctx context.Context, year, race int, sessionType, driver string, lap int) ([]models.TelemetryPoint, error) {
	return c.loader.LapTelemetry(ctx, year, race, sessionType, driver, lap)
}
