package analytics

import (
	"github.com/apexsector/f1-analytics-service/internal/models"
)

// CompareDrivers builds a head-to-head over two drivers' cleaned lap series.
//
// The gap metrics (avg_gap, fastest_lap_gap, consistency, sector gaps) use
// each driver's full series. The faster-lap counts compare the two series
// positionally after truncating both to the shorter length. Keeping the two
// bases distinct is intentional and covered by tests; do not "fix" it by
// matching lap numbers.
func CompareDrivers(driver1, driver2 string, laps1, laps2 []models.Lap) models.Comparison {
	cmp := models.Comparison{Driver1: driver1, Driver2: driver2}

	t1 := lapTimes(laps1)
	t2 := lapTimes(laps2)

	if len(t1) > 0 && len(t2) > 0 {
		cmp.AvgGap = ptr(mean(t1) - mean(t2))
		min1, _ := minMax(t1)
		min2, _ := minMax(t2)
		cmp.FastestLapGap = ptr(min1 - min2)
	}

	if std, ok := sampleStd(t1); ok {
		cmp.Driver1Consistency = ptr(std)
	}
	if std, ok := sampleStd(t2); ok {
		cmp.Driver2Consistency = ptr(std)
	}

	n := len(t1)
	if len(t2) < n {
		n = len(t2)
	}
	for i := 0; i < n; i++ {
		switch {
		case t1[i] < t2[i]:
			cmp.Driver1FasterLaps++
		case t2[i] < t1[i]:
			cmp.Driver2FasterLaps++
		}
	}

	cmp.Sector1Gap = sectorGap(laps1, laps2, 1)
	cmp.Sector2Gap = sectorGap(laps1, laps2, 2)
	cmp.Sector3Gap = sectorGap(laps1, laps2, 3)

	return cmp
}

// sectorGap is the difference of mean sector times, zero when either driver
// has no recorded times for that sector.
func sectorGap(laps1, laps2 []models.Lap, sector int) float64 {
	s1 := sectorTimes(laps1, sector)
	s2 := sectorTimes(laps2, sector)
	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}
	return mean(s1) - mean(s2)
}
