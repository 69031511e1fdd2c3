package devtools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestServer(t *testing.T) (*Recorder, *httptest.Server) {
	t.Helper()

	reg := prometheus.NewRegistry()
	rec := NewRecorder(WithMetrics(MetricsConfig{Registry: reg}))
	srv := NewServer(rec, ServerConfig{Gatherer: reg})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return rec, ts
}

func TestServerSnapshotEndpoint(t *testing.T) {
	rec, ts := newTestServer(t)

	rec.ObserveRun("snap", summaryWith("k"), time.Millisecond)

	resp, err := http.Get(ts.URL + "/effects")
	if err != nil {
		t.Fatalf("GET /effects: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var records []RunRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Effect != "snap" {
		t.Errorf("records = %+v, want one %q record", records, "snap")
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	rec, ts := newTestServer(t)

	rec.ObserveRun("metered", summaryWith("k"), time.Millisecond)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestServerLiveStream(t *testing.T) {
	rec, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/effects/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The server subscribes after the upgrade completes; emit until the
	// stream delivers so the test doesn't race that window.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				rec.ObserveRun("live", summaryWith("a"), time.Millisecond)
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got RunRecord
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}

	if got.Effect != "live" {
		t.Errorf("streamed effect = %q, want %q", got.Effect, "live")
	}
	if got.ChangeCount != 1 {
		t.Errorf("streamed ChangeCount = %d, want 1", got.ChangeCount)
	}
}
