package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/models"
	"github.com/apexsector/f1-analytics-service/internal/processing"
)

// RegisterPitStopRoutes registers the field-wide pit summary.
//
// GET /pitstops/:year/:race
// Returns every driver's stops keyed by driver code; drivers with no stops
// are included with an empty list. Stops are ordered by pit-in time and
// total_stops always equals the list length.
func RegisterPitStopRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/pitstops/:year/:race", func(c *gin.Context) {
		year, ok := intParam(c, "year")
		if !ok {
			return
		}
		race, ok := intParam(c, "race")
		if !ok {
			return
		}

		session, err := src.Session(c.Request.Context(), year, race, models.SessionRace)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		stops := processing.PitStopsByDriver(session.Laps)

		c.JSON(http.StatusOK, gin.H{
			"year":          year,
			"race":          session.Event.RaceName,
			"total_drivers": len(stops),
			"pitstops":      stops,
		})
	})
}
