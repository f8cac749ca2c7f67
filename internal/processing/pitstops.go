package processing

import (
	"sort"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// PitStops derives one pit-stop record per lap with a recorded pit-in time.
// Input laps are raw (uncleaned); missing pit-out just means a nil duration,
// the record is still emitted. Records are sorted ascending by pit-in time.
//
// Compound and tyre life are taken from the lap itself: they describe the
// tyre entering the pit lane, before the change.
func PitStops(laps []models.Lap) []models.PitStop {
	stops := make([]models.PitStop, 0)
	for _, l := range laps {
		if l.PitInTime == nil {
			continue
		}

		var duration *float64
		if l.PitOutTime != nil {
			d := *l.PitOutTime - *l.PitInTime
			duration = &d
		}

		stops = append(stops, models.PitStop{
			Lap:            l.LapNumber,
			Stint:          l.Stint,
			PitInTime:      l.PitInTime,
			PitOutTime:     l.PitOutTime,
			PitDuration:    duration,
			LapTime:        l.LapTime,
			CompoundBefore: l.Compound,
			TyreLifeBefore: l.TyreLife,
		})
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return *stops[i].PitInTime < *stops[j].PitInTime
	})

	return stops
}

// PitStopsByDriver groups pit-stop records for a whole field of laps.
// Every driver present in laps appears in the result, including drivers who
// never stopped (an empty stop list, total_stops zero).
func PitStopsByDriver(laps []models.Lap) map[string]models.DriverPitStops {
	byDriver := make(map[string][]models.Lap)
	for _, l := range laps {
		byDriver[l.Driver] = append(byDriver[l.Driver], l)
	}

	out := make(map[string]models.DriverPitStops, len(byDriver))
	for driver, driverLaps := range byDriver {
		stops := PitStops(driverLaps)
		out[driver] = models.DriverPitStops{
			Driver:     driver,
			TotalStops: len(stops),
			Stops:      stops,
		}
	}
	return out
}
