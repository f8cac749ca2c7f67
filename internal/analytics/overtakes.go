package analytics

import (
	"sort"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// DetectOvertakes finds position gains across the whole field. For every lap
// number above 1, each driver's position is compared with their position on
// the immediately preceding lap number; a lower position value means places
// were gained. Laps without a recorded position are ignored.
func DetectOvertakes(laps []models.Lap) []models.Overtake {
	// positions[lap][driver] = classification position on that lap
	positions := make(map[int]map[string]int)
	for _, l := range laps {
		if l.Position == nil {
			continue
		}
		if positions[l.LapNumber] == nil {
			positions[l.LapNumber] = make(map[string]int)
		}
		positions[l.LapNumber][l.Driver] = *l.Position
	}

	lapNumbers := make([]int, 0, len(positions))
	for n := range positions {
		lapNumbers = append(lapNumbers, n)
	}
	sort.Ints(lapNumbers)

	overtakes := make([]models.Overtake, 0)
	for _, lapNum := range lapNumbers {
		if lapNum <= 1 {
			continue
		}
		prev, ok := positions[lapNum-1]
		if !ok {
			continue
		}

		current := positions[lapNum]
		drivers := make([]string, 0, len(current))
		for d := range current {
			drivers = append(drivers, d)
		}
		// Order by running position so output is deterministic.
		sort.Slice(drivers, func(i, j int) bool {
			if current[drivers[i]] != current[drivers[j]] {
				return current[drivers[i]] < current[drivers[j]]
			}
			return drivers[i] < drivers[j]
		})

		for _, driver := range drivers {
			prevPos, ok := prev[driver]
			if !ok {
				continue
			}
			currPos := current[driver]
			if prevPos > currPos {
				overtakes = append(overtakes, models.Overtake{
					Lap:             lapNum,
					Driver:          driver,
					FromPosition:    prevPos,
					ToPosition:      currPos,
					PositionsGained: prevPos - currPos,
				})
			}
		}
	}
	return overtakes
}
