package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/analytics"
	"github.com/apexsector/f1-analytics-service/internal/models"
	"github.com/apexsector/f1-analytics-service/internal/processing"
)

// lapResponse is the reduced per-lap shape served to clients.
type lapResponse struct {
	LapNumber int      `json:"lap_number"`
	Time      *float64 `json:"time"`
	Sector1   *float64 `json:"sector1"`
	Sector2   *float64 `json:"sector2"`
	Sector3   *float64 `json:"sector3"`
	Compound  string   `json:"compound"`
	TyreLife  *int     `json:"tyre_life"`
}

func lapResponses(laps []models.Lap) []lapResponse {
	out := make([]lapResponse, 0, len(laps))
	for _, l := range laps {
		out = append(out, lapResponse{
			LapNumber: l.LapNumber,
			Time:      l.LapTime,
			Sector1:   l.Sector1,
			Sector2:   l.Sector2,
			Sector3:   l.Sector3,
			Compound:  l.Compound,
			TyreLife:  l.TyreLife,
		})
	}
	return out
}

// RegisterLapRoutes registers per-driver lap data endpoints.
//
// GET /laps/:year/:race/:driver?session=R
//   - laps: cleaned laps only (pit, inaccurate and time-less laps removed)
//   - pit_stops: derived from the raw laps, so pit laps appear here instead
//
// GET /sectors/:year/:race/:driver?session=R
//   - per-sector mean/min/max over the cleaned laps
func RegisterLapRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/laps/:year/:race/:driver", func(c *gin.Context) {
		year, ok := intParam(c, "year")
		if !ok {
			return
		}
		race, ok := intParam(c, "race")
		if !ok {
			return
		}
		sessionType, ok := sessionTypeQuery(c)
		if !ok {
			return
		}
		driver := c.Param("driver")

		session, err := src.Session(c.Request.Context(), year, race, sessionType)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		raw := session.DriverLaps(driver)
		cleaned := processing.CleanLaps(raw)
		stops := processing.PitStops(raw)

		c.JSON(http.StatusOK, gin.H{
			"driver":    driver,
			"race":      session.Event.RaceName,
			"laps":      lapResponses(cleaned),
			"pit_stops": stops,
		})
	})

	r.GET("/sectors/:year/:race/:driver", func(c *gin.Context) {
		year, ok := intParam(c, "year")
		if !ok {
			return
		}
		race, ok := intParam(c, "race")
		if !ok {
			return
		}
		sessionType, ok := sessionTypeQuery(c)
		if !ok {
			return
		}
		driver := c.Param("driver")

		session, err := src.Session(c.Request.Context(), year, race, sessionType)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		cleaned := processing.CleanLaps(session.DriverLaps(driver))

		c.JSON(http.StatusOK, gin.H{
			"driver":  driver,
			"sectors": analytics.AggregateSectors(cleaned),
		})
	})
}
