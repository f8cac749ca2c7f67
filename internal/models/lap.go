package models

// Lap is a single timed lap as supplied by the upstream timing provider.
// All durations are seconds. Nullable fields are pointers and serialize as
// JSON null; the service never substitutes sentinel numbers for missing data.
//
// PitInTime/PitOutTime are seconds since session start and are present on a
// lap if and only if pit activity occurred on or around that lap.
type Lap struct {
	Driver      string   `json:"driver"`
	Team        string   `json:"team,omitempty"`
	LapNumber   int      `json:"lap_number"`
	LapTime     *float64 `json:"time"`
	Sector1     *float64 `json:"sector1"`
	Sector2     *float64 `json:"sector2"`
	Sector3     *float64 `json:"sector3"`
	Compound    string   `json:"compound,omitempty"`
	TyreLife    *int     `json:"tyre_life"`
	Stint       *int     `json:"stint"`
	PitInTime   *float64 `json:"pit_in_time"`
	PitOutTime  *float64 `json:"pit_out_time"`
	Position    *int     `json:"position"`
	IsAccurate  bool     `json:"is_accurate"`
	TrackStatus string   `json:"track_status,omitempty"`
}

// HasPitActivity reports whether the car entered or left the pit lane on this lap.
func (l Lap) HasPitActivity() bool {
	return l.PitInTime != nil || l.PitOutTime != nil
}

// TelemetryPoint is one sample of per-lap car telemetry.
type TelemetryPoint struct {
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Throttle float64 `json:"throttle"`
	Brake    bool    `json:"brake"`
	Gear     int     `json:"gear"`
	RPM      float64 `json:"rpm"`
	DRS      int     `json:"drs"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}
