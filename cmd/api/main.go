package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/config"
	"github.com/apexsector/f1-analytics-service/internal/httpserver"
	"github.com/apexsector/f1-analytics-service/internal/ingest"
	"github.com/apexsector/f1-analytics-service/internal/store"
)

// main boots the service: config → on-disk cache → loader → HTTP server.
func main() {
	if os.Getenv("DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Load runtime config from environment (UPSTREAM_URL, CACHE_PATH, ...).
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// Open the pass-through response cache in front of the upstream provider.
	cache, err := store.NewBoltCache(cfg.CachePath)
	if err != nil {
		logrus.Fatal(err)
	}
	defer cache.Close()

	logrus.WithField("path", cfg.CachePath).Info("response cache enabled")

	loader := ingest.NewLoader(cfg.UpstreamURL, cfg.UpstreamTimeout, cache)

	// Bounded in-memory cache of materialized sessions.
	sessions, err := ingest.NewSessionCache(loader, cfg.SessionCacheSize)
	if err != nil {
		logrus.Fatal(err)
	}

	router := httpserver.NewRouter(cfg, sessions, cache)

	logrus.Infof("server started on %s", cfg.ListenAddr)
	logrus.Fatal(router.Run(cfg.ListenAddr))
}
