package devtools

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig configures the inspector server.
type ServerConfig struct {
	// Addr is the listen address (default: ":6070").
	Addr string

	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Gatherer serves the /metrics endpoint.
	// Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// WriteTimeout bounds each WebSocket write (default: 10s).
	WriteTimeout time.Duration
}

// Server exposes a Recorder over HTTP:
//
//	GET /effects       JSON snapshot of recent runs
//	GET /effects/live  WebSocket stream of runs as they happen
//	GET /metrics       Prometheus metrics
type Server struct {
	rec      *Recorder
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	timeout  time.Duration
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates an inspector server for rec.
func NewServer(rec *Recorder, config ServerConfig) *Server {
	if config.Addr == "" {
		config.Addr = ":6070"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = 10 * time.Second
	}

	s := &Server{
		rec:      rec,
		logger:   config.Logger,
		gatherer: config.Gatherer,
		timeout:  config.WriteTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The inspector is a local development tool.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.http = &http.Server{
		Addr:    config.Addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the HTTP handler, for mounting under an existing
// server instead of ListenAndServe.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/effects", s.handleSnapshot)
	r.Get("/effects/live", s.handleLive)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe blocks serving the inspector until Shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("inspector listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.rec.Snapshot()); err != nil {
		s.logger.Error("snapshot encode error", "error", err)
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade error", "error", err)
		return
	}
	defer conn.Close()

	runs, cancel := s.rec.Subscribe()
	defer cancel()

	// Reads are discarded; the loop exists to notice the client closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case rec := <-runs:
			conn.SetWriteDeadline(time.Now().Add(s.timeout))
			if err := conn.WriteJSON(rec); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					s.logger.Error("websocket write error", "error", err)
				}
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}
