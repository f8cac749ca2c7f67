package models

// PitStop is a derived record for one lap on which the car entered the pits.
// Compound and tyre life describe the tyre that was on the car entering the
// pit lane, i.e. before the change. Computed per request, never stored.
type PitStop struct {
	Lap            int      `json:"lap"`
	Stint          *int     `json:"stint"`
	PitInTime      *float64 `json:"pit_in_time"`
	PitOutTime     *float64 `json:"pit_out_time"`
	PitDuration    *float64 `json:"pit_duration"`
	LapTime        *float64 `json:"lap_time"`
	CompoundBefore string   `json:"compound_before"`
	TyreLifeBefore *int     `json:"tyre_life_before"`
}

// DriverPitStops is the per-driver pit summary served by /pitstops.
// TotalStops always equals len(Stops).
type DriverPitStops struct {
	Driver     string    `json:"driver"`
	TotalStops int       `json:"total_stops"`
	Stops      []PitStop `json:"stops"`
}
