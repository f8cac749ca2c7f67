package models

// Session types accepted by the API, matching the upstream provider's codes.
const (
	SessionFP1        = "FP1"
	SessionFP2        = "FP2"
	SessionFP3        = "FP3"
	SessionQualifying = "Q"
	SessionSprint     = "S"
	SessionRace       = "R"
)

// ValidSessionType reports whether t is a session code the upstream understands.
func ValidSessionType(t string) bool {
	switch t {
	case SessionFP1, SessionFP2, SessionFP3, SessionQualifying, SessionSprint, SessionRace:
		return true
	}
	return false
}

// EventInfo is the race-weekend metadata attached to a loaded session.
type EventInfo struct {
	RaceName string `json:"race_name"`
	Round    int    `json:"round"`
	Country  string `json:"country"`
	Circuit  string `json:"circuit"`
	Date     string `json:"date"`
}

// DriverInfo identifies one entrant in a session.
type DriverInfo struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Number string `json:"number"`
	Team   string `json:"team,omitempty"`
}

// RaceControlMessage is one row of the free-text race-control feed.
// Lap is nil when the feed does not attribute the message to a lap.
type RaceControlMessage struct {
	Lap     *int   `json:"lap"`
	Message string `json:"message"`
}

// SessionStatus is one row of the session-status feed (Started, Aborted, ...).
type SessionStatus struct {
	Time   *float64 `json:"time"`
	Status string   `json:"status"`
}

// Session is a fully materialized session: everything request handlers need,
// loaded once and shared read-only between requests.
type Session struct {
	Event       EventInfo            `json:"event"`
	Drivers     []DriverInfo         `json:"drivers"`
	Laps        []Lap                `json:"laps"`
	RaceControl []RaceControlMessage `json:"race_control"`
	Statuses    []SessionStatus      `json:"session_status"`
}

// DriverLaps returns the laps belonging to one driver, order preserved.
func (s *Session) DriverLaps(code string) []Lap {
	var out []Lap
	for _, l := range s.Laps {
		if l.Driver == code {
			out = append(out, l)
		}
	}
	return out
}

// RaceInfo is one row of the season schedule.
type RaceInfo struct {
	Round    int    `json:"round"`
	RaceName string `json:"race_name"`
	Country  string `json:"country"`
	Circuit  string `json:"circuit"`
	Date     string `json:"date"`
}
