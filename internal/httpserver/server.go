package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/apexsector/f1-analytics-service/internal/config"
	"github.com/apexsector/f1-analytics-service/internal/handlers"
	"github.com/apexsector/f1-analytics-service/internal/store"
)

const serviceVersion = "0.1.0"

// NewRouter wires middleware, operational endpoints and the analytics APIs.
// Public: /, /health, /ready, /metrics
// Data: schedule, laps, pit stops, analysis, incidents, telemetry
func NewRouter(cfg config.Config, src handlers.DataSource, cache *store.BoltCache) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "F1 Data Analytics API",
			"version": serviceVersion,
			"status":  "running",
		})
	})

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the on-disk cache is usable.
	r.GET("/ready", func(c *gin.Context) {
		if err := cache.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterScheduleRoutes(r, src)
	handlers.RegisterLapRoutes(r, src)
	handlers.RegisterPitStopRoutes(r, src)
	handlers.RegisterAnalysisRoutes(r, src)
	handlers.RegisterIncidentRoutes(r, src)
	handlers.RegisterTelemetryRoutes(r, src)

	return r
}
