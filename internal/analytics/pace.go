package analytics

import (
	"math"
	"sort"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

func lapTimes(laps []models.Lap) []float64 {
	var out []float64
	for _, l := range laps {
		if l.LapTime != nil {
			out = append(out, *l.LapTime)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStd is the n-1 standard deviation; undefined for fewer than two values.
func sampleStd(xs []float64) (float64, bool) {
	if len(xs) < 2 {
		return 0, false
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1)), true
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

func ptr(x float64) *float64 { return &x }

// PaceAnalysis computes descriptive lap-time statistics over a lap set.
// Every field is nil on empty input; std and consistency additionally need at
// least two laps. Callers can therefore feed it the Lap Cleaner's output
// unguarded.
func PaceAnalysis(laps []models.Lap) models.PaceStats {
	times := lapTimes(laps)
	if len(times) == 0 {
		return models.PaceStats{}
	}

	lo, hi := minMax(times)
	stats := models.PaceStats{
		MeanPace:   ptr(mean(times)),
		MedianPace: ptr(median(times)),
		FastestLap: ptr(lo),
		SlowestLap: ptr(hi),
	}

	if std, ok := sampleStd(times); ok {
		stats.StdPace = ptr(std)
		if m := *stats.MeanPace; m != 0 {
			stats.Consistency = ptr(std / m)
		}
	}

	return stats
}

// TyreDegradation groups cleaned laps by compound (first-seen order) and
// estimates wear per compound. The in-compound lap index comes from row order
// within the group, not from recorded tyre age. Degradation is the two-point
// estimate (last - first) / stint length, zero for single-lap groups.
func TyreDegradation(laps []models.Lap) []models.DegradationRecord {
	groups := make(map[string][]float64)
	var order []string
	for _, l := range laps {
		if l.Compound == "" || l.LapTime == nil {
			continue
		}
		if _, ok := groups[l.Compound]; !ok {
			order = append(order, l.Compound)
		}
		groups[l.Compound] = append(groups[l.Compound], *l.LapTime)
	}

	records := make([]models.DegradationRecord, 0, len(order))
	for _, compound := range order {
		times := groups[compound]
		first, last := times[0], times[len(times)-1]

		degradation := 0.0
		if len(times) > 1 {
			degradation = (last - first) / float64(len(times))
		}

		records = append(records, models.DegradationRecord{
			Compound:          compound,
			StintLength:       len(times),
			AvgLapTime:        mean(times),
			DegradationPerLap: degradation,
			FirstLapTime:      ptr(first),
			LastLapTime:       ptr(last),
		})
	}
	return records
}

func sectorTimes(laps []models.Lap, sector int) []float64 {
	var out []float64
	for _, l := range laps {
		var t *float64
		switch sector {
		case 1:
			t = l.Sector1
		case 2:
			t = l.Sector2
		case 3:
			t = l.Sector3
		}
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// FindOptimalLap sums the minimum observed time of each sector across the
// input laps: a theoretical best that may not match any actual lap. The total
// is nil when any sector has no observations at all.
func FindOptimalLap(laps []models.Lap) models.OptimalLap {
	var optimal models.OptimalLap
	bests := make([]*float64, 3)
	for i := 1; i <= 3; i++ {
		times := sectorTimes(laps, i)
		if len(times) == 0 {
			continue
		}
		lo, _ := minMax(times)
		bests[i-1] = ptr(lo)
	}
	optimal.Sector1, optimal.Sector2, optimal.Sector3 = bests[0], bests[1], bests[2]

	if bests[0] != nil && bests[1] != nil && bests[2] != nil {
		optimal.OptimalTime = ptr(*bests[0] + *bests[1] + *bests[2])
	}
	return optimal
}

// AggregateSectors computes mean/min/max per sector over a lap set. Sectors
// with no recorded times report nil statistics rather than zeroes.
func AggregateSectors(laps []models.Lap) []models.SectorStats {
	stats := make([]models.SectorStats, 0, 3)
	for i := 1; i <= 3; i++ {
		s := models.SectorStats{Sector: i}
		times := sectorTimes(laps, i)
		if len(times) > 0 {
			lo, hi := minMax(times)
			s.Mean = ptr(mean(times))
			s.Min = ptr(lo)
			s.Max = ptr(hi)
		}
		stats = append(stats, s)
	}
	return stats
}
