package models

// PaceStats is descriptive statistics over a set of lap times, in seconds.
// Fields are nil when undefined: everything on an empty input, StdPace and
// Consistency when fewer than two laps are available.
type PaceStats struct {
	MeanPace    *float64 `json:"mean_pace"`
	MedianPace  *float64 `json:"median_pace"`
	StdPace     *float64 `json:"std_pace"`
	FastestLap  *float64 `json:"fastest_lap"`
	SlowestLap  *float64 `json:"slowest_lap"`
	Consistency *float64 `json:"consistency"`
}

// DegradationRecord summarizes tyre wear for one compound.
// DegradationPerLap is a coarse two-point estimate: (last - first) / laps.
type DegradationRecord struct {
	Compound          string   `json:"compound"`
	StintLength       int      `json:"stint_length"`
	AvgLapTime        float64  `json:"avg_lap_time"`
	DegradationPerLap float64  `json:"degradation_per_lap"`
	FirstLapTime      *float64 `json:"first_lap_time"`
	LastLapTime       *float64 `json:"last_lap_time"`
}

// OptimalLap is the theoretical best lap built from the minimum observed
// sector times; it may not correspond to any single actual lap.
type OptimalLap struct {
	Sector1     *float64 `json:"sector1"`
	Sector2     *float64 `json:"sector2"`
	Sector3     *float64 `json:"sector3"`
	OptimalTime *float64 `json:"optimal_time"`
}

// Comparison is a head-to-head between two drivers over one session.
//
// AvgGap and FastestLapGap are computed over each driver's full lap series.
// The faster-lap counts are computed positionally over both series truncated
// to the shorter length, so Driver1FasterLaps+Driver2FasterLaps never exceeds
// min(len1, len2).
type Comparison struct {
	Driver1            string   `json:"driver1"`
	Driver2            string   `json:"driver2"`
	AvgGap             *float64 `json:"avg_gap"`
	FastestLapGap      *float64 `json:"fastest_lap_gap"`
	Driver1FasterLaps  int      `json:"driver1_faster_laps"`
	Driver2FasterLaps  int      `json:"driver2_faster_laps"`
	Driver1Consistency *float64 `json:"driver1_consistency"`
	Driver2Consistency *float64 `json:"driver2_consistency"`
	Sector1Gap         float64  `json:"sector1_gap"`
	Sector2Gap         float64  `json:"sector2_gap"`
	Sector3Gap         float64  `json:"sector3_gap"`
}

// Overtake is a position gain detected between consecutive lap numbers.
type Overtake struct {
	Lap             int    `json:"lap"`
	Driver          string `json:"driver"`
	FromPosition    int    `json:"from_position"`
	ToPosition      int    `json:"to_position"`
	PositionsGained int    `json:"positions_gained"`
}

// SectorStats aggregates one sector's times over a lap set.
type SectorStats struct {
	Sector int      `json:"sector"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}
