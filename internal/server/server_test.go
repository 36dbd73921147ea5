package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/madhih2000/OEE-Dashboard/internal/chart"
	"github.com/madhih2000/OEE-Dashboard/internal/shell"
	"github.com/madhih2000/OEE-Dashboard/internal/store"
	"github.com/madhih2000/OEE-Dashboard/internal/view"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	s, err := New(shell.Build(store.Sample(), ""), opts...)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t)

	tests := map[string]struct {
		path        string
		status      int
		contentType string
		contains    []string
	}{
		"overview": {
			path:        "/",
			status:      http.StatusOK,
			contentType: "text/html",
			contains:    []string{shell.DefaultTitle, view.OverviewHeading, chart.IDDowntimeUptime, `class="badge success"`, "/process/Machine%201"},
		},
		"detail": {
			path:        "/process/Machine%201",
			status:      http.StatusOK,
			contentType: "text/html",
			contains:    []string{"Details on Machine 1", chart.IDStatusClock, chart.IDMaterialDonut, "Units Produced"},
		},
		"detail placeholders": {
			path:        "/process/Machine%203",
			status:      http.StatusOK,
			contentType: "text/html",
			contains:    []string{view.NoRuntime, view.NoMaterial, `class="badge danger"`},
		},
		"unknown step":    {path: "/process/Nope", status: http.StatusNotFound},
		"unknown path":    {path: "/nope", status: http.StatusNotFound},
		"healthz":         {path: "/healthz", status: http.StatusOK, contentType: "text/plain", contains: []string{"ok"}},
		"dashboard json":  {path: "/api/dashboard.json", status: http.StatusOK, contentType: "application/json", contains: []string{`"title":"Process Monitoring Dashboard"`}},
		"process json":    {path: "/api/process/Furnace.json", status: http.StatusOK, contentType: "application/json", contains: []string{`"lot":"19999"`}},
		"process no ext":  {path: "/api/process/Furnace", status: http.StatusNotFound},
		"overview png":    {path: "/chart/overview/units-bar-chart.png", status: http.StatusOK, contentType: "image/png"},
		"detail png":      {path: "/chart/Machine%201/material-pie-chart.png", status: http.StatusOK, contentType: "image/png"},
		"gauge png":       {path: "/chart/Furnace/oee-gauge.png", status: http.StatusNotFound},
		"clock png":       {path: "/chart/Furnace/status-gauge.png", status: http.StatusNotFound},
		"missing png":     {path: "/chart/Machine%203/material-pie-chart.png", status: http.StatusNotFound},
		"unknown tab png": {path: "/chart/Nope/units-bar-chart.png", status: http.StatusNotFound},
	}

	for name, tc := range tests {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			resp, body := get(t, ts, tc.path)
			if resp.StatusCode != tc.status {
				t.Fatalf("GET %s = %d, want %d", tc.path, resp.StatusCode, tc.status)
			}
			if tc.contentType != "" && !strings.HasPrefix(resp.Header.Get("Content-Type"), tc.contentType) {
				t.Fatalf("Content-Type = %q, want %s", resp.Header.Get("Content-Type"), tc.contentType)
			}
			for _, want := range tc.contains {
				if !strings.Contains(body, want) {
					t.Errorf("GET %s: body missing %q", tc.path, want)
				}
			}
		})
	}
}

func TestDashboardJSONDecodes(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts, "/api/dashboard.json")

	var dash model.Dashboard
	if err := json.Unmarshal([]byte(body), &dash); err != nil {
		t.Fatal(err)
	}
	if len(dash.Tabs) != 12 || dash.Tabs[0].Overview == nil {
		t.Fatalf("decoded %d tabs", len(dash.Tabs))
	}
}

func TestPNGIsCached(t *testing.T) {
	s, err := New(shell.Build(store.Sample(), ""))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	_, first := get(t, ts, "/chart/overview/stacked-bar-chart.png")
	if _, ok := s.pngs.Load("/chart/overview/stacked-bar-chart.png"); !ok {
		t.Fatal("PNG not cached")
	}
	_, second := get(t, ts, "/chart/overview/stacked-bar-chart.png")
	if first != second {
		t.Fatal("cached PNG differs")
	}
}

func TestRejectsWrites(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/", "text/plain", strings.NewReader("x"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("POST / = %d", resp.StatusCode)
	}
}

// lockedBuffer is written by the server goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRequestLogging(t *testing.T) {
	var buf lockedBuffer
	ts := newTestServer(t, WithLogger(log.New(&buf, "", 0)))
	get(t, ts, "/process/Nope")

	if !strings.Contains(buf.String(), "GET /process/Nope 404") {
		t.Fatalf("log = %q", buf.String())
	}
}

func TestRunShutsDown(t *testing.T) {
	s, err := New(shell.Build(store.Sample(), ""), WithAddr("127.0.0.1:0"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunBadAddr(t *testing.T) {
	s, err := New(shell.Build(store.Sample(), ""), WithAddr("127.0.0.1:-1"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("Run on a bad address succeeded")
	}
}

func TestPiesFollowChartDirection(t *testing.T) {
	ts := newTestServer(t)

	_, page := get(t, ts, "/process/Machine%201")
	if strings.Contains(page, "direction:'clockwise'") {
		t.Fatal("page forces clockwise pies")
	}
	if !strings.Contains(page, "direction:p.direction") {
		t.Fatal("page does not read the pie direction from the chart")
	}

	_, body := get(t, ts, "/api/process/Machine%201.json")
	var detail model.DetailPage
	if err := json.Unmarshal([]byte(body), &detail); err != nil {
		t.Fatal(err)
	}
	clock, ok := model.FindChart(detail.Charts(), chart.IDStatusClock)
	if !ok || clock.Pie.Direction != model.CounterClockwise {
		t.Fatalf("clock = %+v", clock.Pie)
	}
}
