package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/analytics"
	"github.com/apexsector/f1-analytics-service/internal/models"
)

// RegisterIncidentRoutes registers the Safety Car / VSC / Red Flag endpoint.
//
// GET /safety-car/:year/:race
// safety_car_periods holds the aggregated lap intervals; incidents the
// underlying point events. Both empty lists are normal for a clean race.
func RegisterIncidentRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/safety-car/:year/:race", func(c *gin.Context) {
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

		c.JSON(http.StatusOK, gin.H{
			"year":               year,
			"race":               race,
			"event":              session.Event.RaceName,
			"safety_car_periods": analytics.AggregatePeriods(session.RaceControl),
			"incidents":          analytics.DetectIncidents(session),
		})
	})
}
