package processing

import (
	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// CleanLaps returns the subset of laps usable for pace analysis: laps with a
// known time, flagged accurate by timing, and with no pit activity. Relative
// order is preserved and an empty result is valid. Running CleanLaps on its
// own output returns the same set.
func CleanLaps(laps []models.Lap) []models.Lap {
	out := make([]models.Lap, 0, len(laps))
	for _, l := range laps {
		if l.LapTime == nil {
			continue
		}
		if !l.IsAccurate {
			continue
		}
		if l.HasPitActivity() {
			continue
		}
		out = append(out, l)
	}

	logrus.WithFields(logrus.Fields{
		"initial":   len(laps),
		"remaining": len(out),
		"removed":   len(laps) - len(out),
	}).Debug("cleaned lap times")

	return out
}
