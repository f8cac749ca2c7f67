package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// RegisterScheduleRoutes registers the season-level listing endpoints.
//
// GET /races/:year            — season schedule
// GET /drivers/:year/:race    — entrants of one race, sorted by car number
func RegisterScheduleRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/races/:year", func(c *gin.Context) {
		year, ok := intParam(c, "year")
		if !ok {
			return
		}

		races, err := src.Schedule(c.Request.Context(), year)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		c.JSON(http.StatusOK, races)
	})

	r.GET("/drivers/:year/:race", func(c *gin.Context) {
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

		drivers := append([]models.DriverInfo(nil), session.Drivers...)
		sort.SliceStable(drivers, func(i, j int) bool {
			return carNumber(drivers[i].Number) < carNumber(drivers[j].Number)
		})

		c.JSON(http.StatusOK, gin.H{
			"year":    year,
			"race":    race,
			"drivers": drivers,
		})
	})
}

// carNumber orders drivers numerically; non-numeric entries sort last.
func carNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 999
	}
	return n
}
