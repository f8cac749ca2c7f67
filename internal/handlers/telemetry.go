package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// fastestLap picks the lap with the lowest known time, false when none has one.
func fastestLap(laps []models.Lap) (models.Lap, bool) {
	var best models.Lap
	found := false
	for _, l := range laps {
		if l.LapTime == nil {
			continue
		}
		if !found || *l.LapTime < *best.LapTime {
			best = l
			found = true
		}
	}
	return best, found
}

// telemetryChannels is the column-oriented telemetry shape clients plot from.
type telemetryChannels struct {
	Distance []float64 `json:"distance"`
	Speed    []float64 `json:"speed"`
	Throttle []float64 `json:"throttle"`
	Brake    []bool    `json:"brake"`
	Gear     []int     `json:"gear"`
	RPM      []float64 `json:"rpm"`
	DRS      []int     `json:"drs"`
}

func channelsFromPoints(points []models.TelemetryPoint, offset float64) telemetryChannels {
	ch := telemetryChannels{
		Distance: make([]float64, 0, len(points)),
		Speed:    make([]float64, 0, len(points)),
		Throttle: make([]float64, 0, len(points)),
		Brake:    make([]bool, 0, len(points)),
		Gear:     make([]int, 0, len(points)),
		RPM:      make([]float64, 0, len(points)),
		DRS:      make([]int, 0, len(points)),
	}
	for _, p := range points {
		ch.Distance = append(ch.Distance, p.Distance-offset)
		ch.Speed = append(ch.Speed, p.Speed)
		ch.Throttle = append(ch.Throttle, p.Throttle)
		ch.Brake = append(ch.Brake, p.Brake)
		ch.Gear = append(ch.Gear, p.Gear)
		ch.RPM = append(ch.RPM, p.RPM)
		ch.DRS = append(ch.DRS, p.DRS)
	}
	return ch
}

func minDistance(pointSets ...[]models.TelemetryPoint) float64 {
	min, found := 0.0, false
	for _, points := range pointSets {
		for _, p := range points {
			if !found || p.Distance < min {
				min = p.Distance
				found = true
			}
		}
	}
	return min
}

// RegisterTelemetryRoutes registers the telemetry and circuit endpoints.
//
// GET /telemetry/:year/:race/:driver1/:driver2?session=
// Fastest-lap telemetry for both drivers, distances normalized with a shared
// offset so the traces align.
//
// GET /circuit-layout/:year/:race
// X/Y coordinates of the overall fastest lap, for drawing the track.
func RegisterTelemetryRoutes(r gin.IRoutes, src DataSource) {
	r.GET("/telemetry/:year/:race/:driver1/:driver2", func(c *gin.Context) {
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

		fastest1, ok1 := fastestLap(session.DriverLaps(driver1))
		fastest2, ok2 := fastestLap(session.DriverLaps(driver2))
		if !ok1 || !ok2 {
			c.JSON(http.StatusNotFound, gin.H{"error": "could not find fastest laps for drivers"})
			return
		}

		tel1, err := src.LapTelemetry(c.Request.Context(), year, race, sessionType, driver1, fastest1.LapNumber)
		if err != nil {
			abortUpstream(c, err)
			return
		}
		tel2, err := src.LapTelemetry(c.Request.Context(), year, race, sessionType, driver2, fastest2.LapNumber)
		if err != nil {
			abortUpstream(c, err)
			return
		}

		// Shared offset keeps the two traces comparable point-for-point.
		offset := minDistance(tel1, tel2)

		c.JSON(http.StatusOK, gin.H{
			"driver1": driver1,
			"driver2": driver2,
			"lap1": gin.H{
				"lap_time":   fastest1.LapTime,
				"lap_number": fastest1.LapNumber,
				"compound":   fastest1.Compound,
				"telemetry":  channelsFromPoints(tel1, offset),
			},
			"lap2": gin.H{
				"lap_time":   fastest2.LapTime,
				"lap_number": fastest2.LapNumber,
				"compound":   fastest2.Compound,
				"telemetry":  channelsFromPoints(tel2, offset),
			},
		})
	})

	r.GET("/circuit-layout/:year/:race", func(c *gin.Context) {
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

		fastest, found := fastestLap(session.Laps)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "no laps found"})
			return
		}

		points, err := src.LapTelemetry(c.Request.Context(), year, race, models.SessionRace, fastest.Driver, fastest.LapNumber)
		if err != nil {
			abortUpstream(c, err)
			return
		}
		if len(points) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no position data available"})
			return
		}

		offset := minDistance(points)
		xs := make([]float64, 0, len(points))
		ys := make([]float64, 0, len(points))
		distances := make([]float64, 0, len(points))
		for _, p := range points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			distances = append(distances, p.Distance-offset)
		}

		c.JSON(http.StatusOK, gin.H{
			"circuit": session.Event.RaceName,
			"layout": gin.H{
				"x":        xs,
				"y":        ys,
				"distance": distances,
			},
		})
	})
}
