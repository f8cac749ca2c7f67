package handlers

import (
	"context"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// DataSource is what handlers need from the ingestion layer: session
// documents (served through the bounded session cache), the season schedule
// and per-lap telemetry. Implemented by ingest.SessionCache; tests substitute
// an in-memory fake.
type DataSource interface {
	Session(ctx context.Context, year, race int, sessionType string) (*models.Session, error)
	Schedule(ctx context.Context, year int) ([]models.RaceInfo, error)
	LapTelemetry(ctx context.Context, year, race int, sessionType, driver string, lap int) ([]models.TelemetryPoint, error)
}
