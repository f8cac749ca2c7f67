package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime configuration required by the service.
type Config struct {
	ListenAddr       string
	UpstreamURL      string
	UpstreamTimeout  time.Duration
	CachePath        string
	SessionCacheSize int
	AllowedOrigins   []string
}

// Load reads required values from environment variables.
// UPSTREAM_URL is the base URL of the timing-data provider and is mandatory;
// everything else has a local-dev default.
func Load() (Config, error) {
	upstream := strings.TrimSpace(os.Getenv("UPSTREAM_URL"))
	if upstream == "" {
		return Config{}, errors.New("UPSTREAM_URL required")
	}

	cfg := Config{
		ListenAddr:       ":8080",
		UpstreamURL:      upstream,
		UpstreamTimeout:  30 * time.Second,
		CachePath:        "./data/cache.db",
		SessionCacheSize: 16,
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
	}

	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}

	if v := strings.TrimSpace(os.Getenv("CACHE_PATH")); v != "" {
		cfg.CachePath = v
	}

	if v := strings.TrimSpace(os.Getenv("SESSION_CACHE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, errors.New("SESSION_CACHE_SIZE must be a positive integer")
		}
		cfg.SessionCacheSize = n
	}

	if v := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, errors.New("UPSTREAM_TIMEOUT must be a positive number of seconds")
		}
		cfg.UpstreamTimeout = time.Duration(secs) * time.Second
	}

	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o == "" {
				continue
			}
			origins = append(origins, o)
		}
		if len(origins) == 0 {
			return Config{}, errors.New(`ALLOWED_ORIGINS must be "origin,origin"`)
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}
