package ingest

import (
	"strings"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// Wire types mirror the upstream provider's JSON. Every optional upstream
// field is a pointer and maps one-to-one onto the optional model field, so
// null handling happens uniformly at decode time instead of per-field checks
// scattered through the pipeline.

type wireSessionDoc struct {
	Event       wireEvent     `json:"event"`
	Drivers     []wireDriver  `json:"drivers"`
	Laps        []wireLap     `json:"laps"`
	RaceControl []wireMessage `json:"race_control"`
	Statuses    []wireStatus  `json:"session_status"`
}

type wireEvent struct {
	RaceName string `json:"race_name"`
	Round    int    `json:"round"`
	Country  string `json:"country"`
	Circuit  string `json:"circuit"`
	Date     string `json:"date"`
}

type wireDriver struct {
	Code      string `json:"code"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Number    string `json:"number"`
	Team      string `json:"team"`
}

type wireLap struct {
	Driver      string   `json:"driver"`
	Team        string   `json:"team"`
	LapNumber   int      `json:"lap_number"`
	LapTime     *float64 `json:"lap_time"`
	Sector1     *float64 `json:"sector1_time"`
	Sector2     *float64 `json:"sector2_time"`
	Sector3     *float64 `json:"sector3_time"`
	Compound    string   `json:"compound"`
	TyreLife    *int     `json:"tyre_life"`
	Stint       *int     `json:"stint"`
	PitInTime   *float64 `json:"pit_in_time"`
	PitOutTime  *float64 `json:"pit_out_time"`
	Position    *int     `json:"position"`
	IsAccurate  bool     `json:"is_accurate"`
	TrackStatus string   `json:"track_status"`
}

type wireMessage struct {
	Lap     *int   `json:"lap"`
	Message string `json:"message"`
}

type wireStatus struct {
	Time   *float64 `json:"time"`
	Status string   `json:"status"`
}

type wireSchedule struct {
	Round    int    `json:"round"`
	RaceName string `json:"race_name"`
	Country  string `json:"country"`
	Circuit  string `json:"circuit"`
	Date     string `json:"date"`
}

func sessionFromWire(doc wireSessionDoc) *models.Session {
	s := &models.Session{
		Event: models.EventInfo{
			RaceName: doc.Event.RaceName,
			Round:    doc.Event.Round,
			Country:  doc.Event.Country,
			Circuit:  doc.Event.Circuit,
			Date:     dateOnly(doc.Event.Date),
		},
	}

	for _, d := range doc.Drivers {
		s.Drivers = append(s.Drivers, models.DriverInfo{
			Code:   d.Code,
			Name:   strings.TrimSpace(d.FirstName + " " + d.LastName),
			Number: d.Number,
			Team:   d.Team,
		})
	}
	for _, l := range doc.Laps {
		s.Laps = append(s.Laps, lapFromWire(l))
	}
	for _, m := range doc.RaceControl {
		s.RaceControl = append(s.RaceControl, models.RaceControlMessage{Lap: m.Lap, Message: m.Message})
	}
	for _, st := range doc.Statuses {
		s.Statuses = append(s.Statuses, models.SessionStatus{Time: st.Time, Status: st.Status})
	}

	return s
}

func lapFromWire(l wireLap) models.Lap {
	return models.Lap{
		Driver:      l.Driver,
		Team:        l.Team,
		LapNumber:   l.LapNumber,
		LapTime:     l.LapTime,
		Sector1:     l.Sector1,
		Sector2:     l.Sector2,
		Sector3:     l.Sector3,
		Compound:    l.Compound,
		TyreLife:    l.TyreLife,
		Stint:       l.Stint,
		PitInTime:   l.PitInTime,
		PitOutTime:  l.PitOutTime,
		Position:    l.Position,
		IsAccurate:  l.IsAccurate,
		TrackStatus: l.TrackStatus,
	}
}

// dateOnly trims an upstream timestamp to YYYY-MM-DD for schedule responses.
func dateOnly(ts string) string {
	if i := strings.IndexAny(ts, "T "); i > 0 {
		return ts[:i]
	}
	return ts
}
