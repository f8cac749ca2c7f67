package models

// IncidentType classifies a race interruption.
type IncidentType string

const (
	IncidentRedFlag   IncidentType = "Red Flag"
	IncidentSafetyCar IncidentType = "Safety Car"
	IncidentVSC       IncidentType = "VSC"
	// IncidentSCVSC is the generic type assigned by the lap-time anomaly
	// fallback when race-control data is unavailable.
	IncidentSCVSC IncidentType = "SC/VSC"
)

// Incident is a point event extracted from the race-control or
// session-status feed. Lap is nil when the source row carried no lap number;
// such incidents are dropped before interval aggregation.
type Incident struct {
	Lap    *int         `json:"lap"`
	Type   IncidentType `json:"type"`
	Reason string       `json:"reason"`
}

// IncidentPeriod is a closed interval of laps under an incident regime.
// After aggregation, periods are non-overlapping and ordered by StartLap.
type IncidentPeriod struct {
	StartLap int          `json:"start_lap"`
	EndLap   int          `json:"end_lap"`
	Type     IncidentType `json:"type"`
	Reason   string       `json:"reason"`
}
