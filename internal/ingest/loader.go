package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/models"
	"github.com/apexsector/f1-analytics-service/internal/store"
)

// Loader fetches timing data from the upstream provider. Every request goes
// through the on-disk pass-through cache first; a hit never touches the
// network. Upstream failures are wrapped and propagated, never retried here.
type Loader struct {
	baseURL string
	client  *http.Client
	cache   *store.BoltCache
}

func NewLoader(baseURL string, timeout time.Duration, cache *store.BoltCache) *Loader {
	return &Loader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

// fetchJSON resolves path against the cache, falling back to the upstream and
// populating the cache on the way back. The decoded value lands in v.
func (l *Loader) fetchJSON(ctx context.Context, path string, v interface{}) error {
	if body, ok, err := l.cache.Get(path); err != nil {
		return err
	} else if ok {
		logrus.WithField("path", path).Debug("upstream response served from cache")
		return errors.Wrapf(json.Unmarshal(body, v), "corrupt cache entry for %q", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "could not build upstream request")
	}

	logrus.WithField("path", path).Info("fetching from upstream")

	resp, err := l.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "upstream request %q failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("upstream request %q returned status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "could not read upstream response for %q", path)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "invalid upstream JSON for %q", path)
	}

	if err := l.cache.Put(path, body); err != nil {
		// A cache write failure degrades to uncached operation, nothing more.
		logrus.WithError(err).Warn("could not cache upstream response")
	}

	return nil
}

// Schedule returns the season calendar for a year.
func (l *Loader) Schedule(ctx context.Context, year int) ([]models.RaceInfo, error) {
	var wire []wireSchedule
	if err := l.fetchJSON(ctx, fmt.Sprintf("/schedule/%d", year), &wire); err != nil {
		return nil, err
	}

	races := make([]models.RaceInfo, 0, len(wire))
	for _, w := range wire {
		races = append(races, models.RaceInfo{
			Round:    w.Round,
			RaceName: w.RaceName,
			Country:  w.Country,
			Circuit:  w.Circuit,
			Date:     dateOnly(w.Date),
		})
	}
	return races, nil
}

// LoadSession fetches and materializes one full session document.
func (l *Loader) LoadSession(ctx context.Context, year, race int, sessionType string) (*models.Session, error) {
	var doc wireSessionDoc
	path := fmt.Sprintf("/session/%d/%d/%s", year, race, sessionType)
	if err := l.fetchJSON(ctx, path, &doc); err != nil {
		return nil, err
	}

	session := sessionFromWire(doc)

	logrus.WithFields(logrus.Fields{
		"event": session.Event.RaceName,
		"laps":  len(session.Laps),
	}).Info("session loaded")

	return session, nil
}

// LapTelemetry fetches the car telemetry samples for one driver's lap.
func (l *Loader) LapTelemetry(ctx context.Context, year, race int, sessionType, driver string, lap int) ([]models.TelemetryPoint, error) {
	var points []models.TelemetryPoint
	path := fmt.Sprintf("/telemetry/%d/%d/%s/%s/%d", year, race, sessionType, driver, lap)
	if err := l.fetchJSON(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}
