package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/analytics"
	"github.com/apexsector/f1-analytics-service/internal/models"
	"github.com/apexsector/f1-analytics-service/internal/processing"
)

// RegisterAnalysisRoutes registers the derived-statistics endpoints.
//
// GET /analysis/pace/:year/:race/:driver?session=R      pace + tyre degradation
// GET /analysis/optimal/:year/:race/:driver?session=R   theoretical best lap
// GET /analysis/overtakes/:year/:race                   field-wide overtakes
// GET /comparison/:year/:race/:driver1/:driver2?session= head-to-head
func RegisterAnalysisRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/analysis/pace/:year/:race/:driver", func(c *gin.Context) {
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
			"driver":           driver,
			"pace":             analytics.PaceAnalysis(cleaned),
			"tyre_degradation": analytics.TyreDegradation(cleaned),
		})
	})

	r.GET("/analysis/optimal/:year/:race/:driver", func(c *gin.Context) {
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
			"driver":      driver,
			"optimal_lap": analytics.FindOptimalLap(cleaned),
		})
	})

	r.GET("/analysis/overtakes/:year/:race", func(c *gin.Context) {
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

		overtakes := analytics.DetectOvertakes(session.Laps)

		c.JSON(http.StatusOK, gin.H{
			"year":      year,
			"race":      race,
			"event":     session.Event.RaceName,
			"total":     len(overtakes),
			"overtakes": overtakes,
		})
	})

	r.GET("/comparison/:year/:race/:driver1/:driver2", func(c *gin.Context) {
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
		driver1 := c.Param("driver1")
		driver2 := c.Param("driver2")

		session, err := src.Session(c.Request.Context(), year, race, sessionType)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		laps1 := processing.CleanLaps(session.DriverLaps(driver1))
		laps2 := processing.CleanLaps(session.DriverLaps(driver2))

		c.JSON(http.StatusOK, analytics.CompareDrivers(driver1, driver2, laps1, laps2))
	})
}
