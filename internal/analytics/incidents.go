package analytics

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/apexsector/f1-analytics-service/internal/models"
)

// messageMatchers classifies race-control text into incident types. The list
// is ordered and the first match wins: a message containing both SC and VSC
// keywords is resolved by position in this list, not by accident of parsing.
var messageMatchers = []struct {
	keywords []string
	kind     models.IncidentType
}{
	{[]string{"RED FLAG"}, models.IncidentRedFlag},
	{[]string{"SAFETY CAR", "SC DEPLOYED"}, models.IncidentSafetyCar},
	{[]string{"VIRTUAL SAFETY CAR", "VSC"}, models.IncidentVSC},
}

// anomalyFactor flags a lap as incident-affected when its time exceeds this
// multiple of the driver's median. Used only when race control gave us nothing.
const anomalyFactor = 1.5

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// classifyMessage maps message text (already upper-cased) to an incident type.
func classifyMessage(text string) (models.IncidentType, bool) {
	for _, m := range messageMatchers {
		if containsAny(text, m.keywords) {
			return m.kind, true
		}
	}
	return "", false
}

// DetectIncidents extracts typed point incidents from a session.
//
// Sources, in order: session-status rows signalling a stoppage (no lap
// attribution available there), race-control messages matched against the
// keyword table, and, only when the message feed produced nothing, a lap-time
// anomaly scan per driver. Incidents are deduplicated by (lap, type), rows
// without a resolvable lap are dropped, and the result is sorted by lap.
func DetectIncidents(session *models.Session) []models.Incident {
	var incidents []models.Incident

	for _, st := range session.Statuses {
		status := st.Status
		if strings.Contains(status, "Aborted") || strings.Contains(status, "Red") {
			incidents = append(incidents, models.Incident{
				Type:   models.IncidentRedFlag,
				Reason: "Session stopped",
			})
		}
	}

	fromMessages := 0
	for _, msg := range session.RaceControl {
		text := strings.ToUpper(msg.Message)
		if text == "" {
			continue
		}
		kind, ok := classifyMessage(text)
		if !ok {
			continue
		}
		incidents = append(incidents, models.Incident{
			Lap:    msg.Lap,
			Type:   kind,
			Reason: msg.Message,
		})
		fromMessages++
	}

	// Fallback: with no race-control evidence at all, infer neutralized laps
	// from lap-time anomalies against each driver's median.
	if fromMessages == 0 {
		incidents = append(incidents, anomalyIncidents(session.Laps, incidents)...)
	}

	type key struct {
		lap  int
		kind models.IncidentType
	}
	seen := make(map[key]bool)
	unique := incidents[:0]
	for _, in := range incidents {
		if in.Lap == nil {
			continue
		}
		k := key{*in.Lap, in.Type}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, in)
	}

	sort.SliceStable(unique, func(i, j int) bool { return *unique[i].Lap < *unique[j].Lap })

	logrus.WithField("count", len(unique)).Info("incident detection complete")

	return unique
}

func anomalyIncidents(laps []models.Lap, existing []models.Incident) []models.Incident {
	flagged := make(map[int]bool)
	for _, in := range existing {
		if in.Lap != nil {
			flagged[*in.Lap] = true
		}
	}

	byDriver := make(map[string][]models.Lap)
	var order []string
	for _, l := range laps {
		if _, ok := byDriver[l.Driver]; !ok {
			order = append(order, l.Driver)
		}
		byDriver[l.Driver] = append(byDriver[l.Driver], l)
	}

	var out []models.Incident
	for _, driver := range order {
		driverLaps := byDriver[driver]
		if len(driverLaps) <= 3 {
			continue
		}

		var times []float64
		var timed []models.Lap
		for _, l := range driverLaps {
			if l.LapTime != nil {
				times = append(times, *l.LapTime)
				timed = append(timed, l)
			}
		}
		if len(times) == 0 {
			continue
		}

		med := median(times)
		for _, l := range timed {
			if *l.LapTime <= med*anomalyFactor {
				continue
			}
			if flagged[l.LapNumber] {
				continue
			}
			flagged[l.LapNumber] = true
			lap := l.LapNumber
			out = append(out, models.Incident{
				Lap:    &lap,
				Type:   models.IncidentSCVSC,
				Reason: "Significant lap time increase detected",
			})
		}
	}
	return out
}

// Keyword sets driving the period state machine. Deployment is checked before
// ending: a message matching both sets is treated as a deployment. That
// first-match-wins order is deliberate and load-bearing for ambiguous feeds.
var (
	deployKeywords = []string{"DEPLOYED", "SC DEPLOYED", "VSC DEPLOYED"}
	endingKeywords = []string{"IN THIS LAP", "ENDING", "VSC ENDING", "SC ENDING"}
)

// AggregatePeriods folds the race-control feed into closed lap intervals.
//
// Rules, in order per message: CHEQUERED FLAG messages are ignored entirely;
// a deployment closes any open period and opens a new one at that lap; an
// ending message closes the open period at that lap (or emits a single-lap
// period when nothing is open); any other message extends an open period's
// end lap. A period still open when the feed ends is closed as-is.
// Rows without a lap number are skipped rather than aborting the scan.
func AggregatePeriods(messages []models.RaceControlMessage) []models.IncidentPeriod {
	periods := make([]models.IncidentPeriod, 0)
	var open *models.IncidentPeriod

	for _, msg := range messages {
		text := strings.ToUpper(msg.Message)
		if strings.Contains(text, "CHEQUERED FLAG") {
			continue
		}
		if msg.Lap == nil {
			continue
		}
		lap := *msg.Lap

		switch {
		case containsAny(text, deployKeywords):
			if open != nil {
				periods = append(periods, *open)
			}
			open = &models.IncidentPeriod{
				StartLap: lap,
				EndLap:   lap,
				Type:     periodType(text),
				Reason:   msg.Message,
			}

		case containsAny(text, endingKeywords):
			if open != nil {
				open.EndLap = lap
				periods = append(periods, *open)
				open = nil
			} else {
				periods = append(periods, models.IncidentPeriod{
					StartLap: lap,
					EndLap:   lap,
					Type:     periodType(text),
					Reason:   msg.Message,
				})
			}

		default:
			if open != nil {
				open.EndLap = lap
			}
		}
	}

	if open != nil {
		periods = append(periods, *open)
	}

	sort.SliceStable(periods, func(i, j int) bool { return periods[i].StartLap < periods[j].StartLap })

	return periods
}

func periodType(text string) models.IncidentType {
	if kind, ok := classifyMessage(text); ok {
		return kind
	}
	return models.IncidentSCVSC
}
