// Package server serves the dashboard over HTTP: HTML pages drawn by Plotly
// in the browser, the chart specs as JSON, and server-side PNG charts.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/madhih2000/OEE-Dashboard/internal/config"
	"github.com/madhih2000/OEE-Dashboard/internal/render"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

// OverviewTab is the tab segment of overview chart URLs.
const OverviewTab = "overview"

const shutdownTimeout = 5 * time.Second

type Option func(*Server)

func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

type Server struct {
	dash   model.Dashboard
	addr   string
	logger *log.Logger

	overview *template.Template
	detail   *template.Template
	mux      *http.ServeMux

	// rendered PNGs by request path; the dashboard never changes
	pngs sync.Map
}

type tabLink struct {
	Label  string
	Href   string
	Active bool
}

type pageData struct {
	Title    string
	Tabs     []tabLink
	Overview *model.OverviewPage
	Detail   *model.DetailPage
	Charts   template.JS
}

type panelData struct {
	Step  string
	Panel model.Panel
}

var funcMap = template.FuncMap{
	"pngHref": pngHref,
	"panelOf": func(step string, p model.Panel) panelData {
		return panelData{Step: step, Panel: p}
	},
}

func pngHref(tab, id string) string {
	return "/chart/" + url.PathEscape(tab) + "/" + url.PathEscape(id) + ".png"
}

// ProcessHref is the page URL of a process step.
func ProcessHref(step string) string {
	return "/process/" + url.PathEscape(step)
}

// New parses the page templates and wires the routes.
func New(dash model.Dashboard, opts ...Option) (*Server, error) {
	s := &Server{
		dash:   dash,
		addr:   config.DefaultAddr,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.overview, err = template.New("overview").Funcs(funcMap).Parse(tmplBase + tmplOverview); err != nil {
		return nil, err
	}
	if s.detail, err = template.New("detail").Funcs(funcMap).Parse(tmplBase + tmplDetail); err != nil {
		return nil, err
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handleOverview)
	s.mux.HandleFunc("/process/", s.handleProcess)
	s.mux.HandleFunc("/api/dashboard.json", s.handleDashboardJSON)
	s.mux.HandleFunc("/api/process/", s.handleProcessJSON)
	s.mux.HandleFunc("/chart/", s.handleChartPNG)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	return s, nil
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(getOnly(s.mux))
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Printf("serving %q on http://%s", s.dash.Title, ln.Addr())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) tabs(active string) []tabLink {
	links := make([]tabLink, len(s.dash.Tabs))
	for i, t := range s.dash.Tabs {
		href := "/"
		if t.Detail != nil {
			href = ProcessHref(t.Detail.Step)
		}
		links[i] = tabLink{Label: t.Label, Href: href, Active: t.Label == active}
	}
	return links
}

func (s *Server) overviewPage() (*model.OverviewPage, string) {
	for _, t := range s.dash.Tabs {
		if t.Overview != nil {
			return t.Overview, t.Label
		}
	}
	return nil, ""
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, label := s.overviewPage()
	if page == nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, s.overview, label, page.Charts(), pageData{Overview: page})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	page, ok := s.dash.DetailFor(strings.TrimPrefix(r.URL.Path, "/process/"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, s.detail, page.Step, page.Charts(), pageData{Detail: page})
}

func (s *Server) render(w http.ResponseWriter, t *template.Template, active string, charts []model.ChartSpec, data pageData) {
	specs, err := json.Marshal(charts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.Title = s.dash.Title
	data.Tabs = s.tabs(active)
	data.Charts = template.JS(specs)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		s.logger.Printf("template error: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.dash)
}

func (s *Server) handleProcessJSON(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, "/api/process/"), ".json")
	if !ok {
		http.NotFound(w, r)
		return
	}
	page, ok := s.dash.DetailFor(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, page)
}

// handleChartPNG serves /chart/{tab}/{id}.png, where tab is "overview" or a
// process step.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/chart/")
	cut := strings.LastIndex(rest, "/")
	if cut < 0 {
		http.NotFound(w, r)
		return
	}
	tab := rest[:cut]
	id, ok := strings.CutSuffix(rest[cut+1:], ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}
	spec, ok := s.lookupChart(tab, id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if cached, ok := s.pngs.Load(r.URL.Path); ok {
		writePNG(w, cached.([]byte))
		return
	}
	var buf bytes.Buffer
	if err := render.PNG(&buf, spec); err != nil {
		if errors.Is(err, render.ErrUnsupported) || errors.Is(err, render.ErrNoData) {
			http.NotFound(w, r)
			return
		}
		s.logger.Printf("render %s/%s: %v", tab, id, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.pngs.Store(r.URL.Path, buf.Bytes())
	writePNG(w, buf.Bytes())
}

func (s *Server) lookupChart(tab, id string) (model.ChartSpec, bool) {
	if tab == OverviewTab {
		page, _ := s.overviewPage()
		if page == nil {
			return model.ChartSpec{}, false
		}
		return model.FindChart(page.Charts(), id)
	}
	page, ok := s.dash.DetailFor(tab)
	if !ok {
		return model.ChartSpec{}, false
	}
	return model.FindChart(page.Charts(), id)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(b)
}
