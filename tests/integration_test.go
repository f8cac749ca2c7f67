package tests

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/apexsector/f1-analytics-service/internal/config"
	"github.com/apexsector/f1-analytics-service/internal/httpserver"
	"github.com/apexsector/f1-analytics-service/internal/ingest"
	"github.com/apexsector/f1-analytics-service/internal/store"
)

////////////////////////////////////////////////////////////////////////////////
// INTEGRATION TEST SUITE
//
// These tests validate the service end-to-end:
//
//   Client → HTTP API → Session cache → Loader → Disk cache → Upstream
//
// Both the upstream provider and the API run in-process on httptest servers,
// so the suite is self-contained and needs no external services.
////////////////////////////////////////////////////////////////////////////////

const sessionDoc = `{
	"event": {"race_name": "Qatar Grand Prix", "round": 23, "country": "Qatar", "circuit": "Lusail", "date": "2025-11-30T17:00:00"},
	"drivers": [
		{"code": "VER", "first_name": "Max", "last_name": "Verstappen", "number": "1", "team": "Red Bull Racing"},
		{"code": "HAM", "first_name": "Lewis", "last_name": "Hamilton", "number": "44", "team": "Ferrari"}
	],
	"laps": [
		{"driver": "VER", "lap_number": 1, "lap_time": 90.0, "sector1_time": 28.0, "sector2_time": 35.2, "sector3_time": 26.8, "compound": "MEDIUM", "tyre_life": 1, "position": 1, "is_accurate": true},
		{"driver": "VER", "lap_number": 2, "lap_time": 105.2, "compound": "MEDIUM", "tyre_life": 2, "stint": 1, "pit_in_time": 185.0, "pit_out_time": 209.5, "position": 1, "is_accurate": false},
		{"driver": "VER", "lap_number": 3, "lap_time": 91.0, "sector1_time": 28.1, "sector2_time": 35.0, "sector3_time": 27.9, "compound": "HARD", "tyre_life": 1, "position": 1, "is_accurate": true},
		{"driver": "HAM", "lap_number": 1, "lap_time": 91.5, "compound": "SOFT", "tyre_life": 1, "position": 2, "is_accurate": true},
		{"driver": "HAM", "lap_number": 2, "lap_time": 92.0, "compound": "SOFT", "tyre_life": 2, "position": 2, "is_accurate": true},
		{"driver": "HAM", "lap_number": 3, "lap_time": 92.5, "compound": "SOFT", "tyre_life": 3, "position": 2, "is_accurate": true}
	],
	"race_control": [
		{"lap": 10, "message": "SC DEPLOYED"},
		{"lap": 11, "message": "TRACK CLEAR"},
		{"lap": 12, "message": "VSC ENDING"},
		{"lap": 57, "message": "CHEQUERED FLAG"}
	],
	"session_status": [
		{"time": 0.0, "status": "Started"},
		{"time": 5400.0, "status": "Finished"}
	]
}`

const scheduleDoc = `[
	{"round": 23, "race_name": "Qatar Grand Prix", "country": "Qatar", "circuit": "Lusail", "date": "2025-11-30T17:00:00"}
]`

// newStack boots upstream + service, returning the API base URL and an
// upstream hit counter.
func newStack(t *testing.T) (string, *int64) {
	t.Helper()

	var hits int64
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		switch r.URL.Path {
		case "/session/2025/23/R":
			fmt.Fprint(w, sessionDoc)
		case "/schedule/2025":
			fmt.Fprint(w, scheduleDoc)
		default:
			http.NotFound(w, r)
		}
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	cache, err := store.NewBoltCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cache.Close() })

	loader := ingest.NewLoader(upstream.URL, 5*time.Second, cache)
	sessions, err := ingest.NewSessionCache(loader, 4)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{
		UpstreamURL:      upstream.URL,
		UpstreamTimeout:  5 * time.Second,
		SessionCacheSize: 4,
		AllowedOrigins:   []string{"http://localhost:3000"},
	}

	api := httptest.NewServer(httpserver.NewRouter(cfg, sessions, cache))
	t.Cleanup(api.Close)

	return api.URL, &hits
}

// httpGet performs a GET and returns status + body.
func httpGet(t *testing.T, base, path string) (int, []byte) {
	t.Helper()

	resp, err := (&http.Client{Timeout: 5 * time.Second}).Get(base + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, body)
	}
}

////////////////////////////////////////////////////////////////////////////////
// HEALTH & READINESS TESTS
////////////////////////////////////////////////////////////////////////////////

func TestHealth_ReturnsOK(t *testing.T) {
	base, _ := newStack(t)

	if s, _ := httpGet(t, base, "/health"); s != http.StatusOK {
		t.Fatalf("health expected 200 got %d", s)
	}
}

func TestReady_ReturnsOK(t *testing.T) {
	base, _ := newStack(t)

	if s, _ := httpGet(t, base, "/ready"); s != http.StatusOK {
		t.Fatalf("ready expected 200 got %d", s)
	}
}

////////////////////////////////////////////////////////////////////////////////
// CORE SYSTEM BEHAVIOR TESTS
////////////////////////////////////////////////////////////////////////////////

// The full pipeline: raw upstream laps → cleaner → pit extractor → response.
func TestLapsEndpoint_EndToEnd(t *testing.T) {
	base, _ := newStack(t)

	s, b := httpGet(t, base, "/laps/2025/23/VER")
	if s != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", s, b)
	}

	var resp struct {
		Laps []struct {
			LapNumber int `json:"lap_number"`
		} `json:"laps"`
		PitStops []struct {
			Lap            int      `json:"lap"`
			PitDuration    *float64 `json:"pit_duration"`
			CompoundBefore string   `json:"compound_before"`
		} `json:"pit_stops"`
	}
	decode(t, b, &resp)

	if len(resp.Laps) != 2 {
		t.Fatalf("expected 2 cleaned laps, got %+v", resp.Laps)
	}
	if len(resp.PitStops) != 1 || resp.PitStops[0].Lap != 2 {
		t.Fatalf("expected the lap-2 stop, got %+v", resp.PitStops)
	}
	if resp.PitStops[0].CompoundBefore != "MEDIUM" {
		t.Fatalf("expected the pre-stop compound, got %q", resp.PitStops[0].CompoundBefore)
	}
	if *resp.PitStops[0].PitDuration != 24.5 {
		t.Fatalf("expected 24.5s stop, got %v", *resp.PitStops[0].PitDuration)
	}
}

// A repeated request must be served from the session cache without another
// upstream round trip.
func TestSessionCaching_SecondRequestSkipsUpstream(t *testing.T) {
	base, hits := newStack(t)

	httpGet(t, base, "/laps/2025/23/VER")
	httpGet(t, base, "/laps/2025/23/HAM")
	httpGet(t, base, "/pitstops/2025/23")

	if got := atomic.LoadInt64(hits); got != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", got)
	}
}

func TestSafetyCarEndpoint_FoldsPeriods(t *testing.T) {
	base, _ := newStack(t)

	s, b := httpGet(t, base, "/safety-car/2025/23")
	if s != http.StatusOK {
		t.Fatalf("expected 200 got %d", s)
	}

	var resp struct {
		Periods []struct {
			StartLap int    `json:"start_lap"`
			EndLap   int    `json:"end_lap"`
			Type     string `json:"type"`
		} `json:"safety_car_periods"`
	}
	decode(t, b, &resp)

	if len(resp.Periods) != 1 {
		t.Fatalf("expected 1 period, got %+v", resp.Periods)
	}
	if p := resp.Periods[0]; p.StartLap != 10 || p.EndLap != 12 || p.Type != "Safety Car" {
		t.Fatalf("unexpected period %+v", p)
	}
}

func TestOptimalLapEndpoint(t *testing.T) {
	base, _ := newStack(t)

	s, b := httpGet(t, base, "/analysis/optimal/2025/23/VER")
	if s != http.StatusOK {
		t.Fatalf("expected 200 got %d", s)
	}

	var resp struct {
		OptimalLap struct {
			OptimalTime *float64 `json:"optimal_time"`
		} `json:"optimal_lap"`
	}
	decode(t, b, &resp)

	// Best sectors: 28.0 + 35.0 + 26.8 across VER's two cleaned laps.
	if resp.OptimalLap.OptimalTime == nil || *resp.OptimalLap.OptimalTime != 89.8 {
		t.Fatalf("unexpected optimal time %v", resp.OptimalLap.OptimalTime)
	}
}

func TestUnknownRace_ReturnsBadGateway(t *testing.T) {
	base, _ := newStack(t)

	if s, _ := httpGet(t, base, "/laps/2025/99/VER"); s != http.StatusBadGateway {
		t.Fatalf("expected 502 for unknown race, got %d", s)
	}
}

func TestRacesEndpoint_NormalizesDates(t *testing.T) {
	base, _ := newStack(t)

	s, b := httpGet(t, base, "/races/2025")
	if s != http.StatusOK {
		t.Fatalf("expected 200 got %d", s)
	}

	var races []struct {
		Date string `json:"date"`
	}
	decode(t, b, &races)

	if len(races) != 1 || races[0].Date != "2025-11-30" {
		t.Fatalf("unexpected schedule %+v", races)
	}
}

func TestMetricsEndpoint_Exposed(t *testing.T) {
	base, _ := newStack(t)

	if s, _ := httpGet(t, base, "/metrics"); s != http.StatusOK {
		t.Fatalf("metrics expected 200 got %d", s)
	}
}
