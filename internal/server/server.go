// Package server exposes the built-in charts over HTTP: metadata and
// geometry as JSON, rendered images, and a websocket stream redrawing a
// chart every time the client reports a new size.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/canvas"
	"github.com/midbel/pitchcharts/internal/config"
	"github.com/midbel/pitchcharts/viewport"
)

const maxRatio = 4

var errQuery = errors.New("invalid query")

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ChartInfo struct {
	Name        string   `json:"name"`
	Caption     string   `json:"caption"`
	Description string   `json:"description"`
	Aspect      float64  `json:"aspect"`
	Formats     []string `json:"formats"`
}

type ChartLayout struct {
	ChartInfo
	Geometry charts.Geometry `json:"geometry"`
}

type Server struct {
	router chi.Router
	cfg    config.ServerConfig
	logger *slog.Logger
}

func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := Server{
		cfg:    cfg,
		logger: logger,
	}
	s.router = s.buildRouter()
	return &s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:        s.cfg.Addr(),
		Handler:     s.router,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", httpSrv.Addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(sctx)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if len(s.cfg.CORSOrigins) > 0 {
		origins = s.cfg.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/charts", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleChart)
	})
	r.Get("/ws/charts/{name}", s.handleStream)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var list []ChartInfo
	for _, n := range charts.Names() {
		ch, _ := charts.Lookup(n)
		list = append(list, infoOf(ch))
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    list,
	})
}

// handleChart serves the layout of a chart as JSON, or the chart itself
// when the name carries the extension of an image format.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var (
		name   = chi.URLParam(r, "name")
		format = strings.TrimPrefix(path.Ext(name), ".")
	)
	name = strings.TrimSuffix(name, path.Ext(name))

	ch, err := charts.Lookup(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	width, ratio, err := s.parseSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if format == "" {
		var m canvas.Target
		if m, err = canvas.New(canvas.SVG); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		geo, _ := ch.Draw(m, viewport.Width(width), viewport.Ratio(ratio))
		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Data: ChartLayout{
				ChartInfo: infoOf(ch),
				Geometry:  geo,
			},
		})
		return
	}
	target, err := canvas.New(format)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if _, ok := ch.Draw(target, viewport.Width(width), viewport.Ratio(ratio)); !ok {
		writeError(w, http.StatusInternalServerError, "no drawing context")
		return
	}
	data, err := canvas.Bytes(target)
	if err != nil {
		s.logger.Error("encoding failed", "chart", name, "format", format, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", target.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) parseSize(r *http.Request) (float64, float64, error) {
	var (
		q     = r.URL.Query()
		width = 0.0
		ratio = 1.0
		err   error
	)
	if str := q.Get("width"); str != "" {
		if width, err = strconv.ParseFloat(str, 64); err != nil {
			return 0, 0, fmt.Errorf("width %q: %w", str, errQuery)
		}
	}
	if str := q.Get("dpr"); str != "" {
		if ratio, err = strconv.ParseFloat(str, 64); err != nil {
			return 0, 0, fmt.Errorf("dpr %q: %w", str, errQuery)
		}
	}
	return s.clampSize(width, ratio)
}

func (s *Server) clampSize(width, ratio float64) (float64, float64, error) {
	if s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth {
		return 0, 0, fmt.Errorf("width larger than %.0f: %w", s.cfg.MaxWidth, errQuery)
	}
	if ratio > maxRatio {
		return 0, 0, fmt.Errorf("dpr larger than %d: %w", maxRatio, errQuery)
	}
	return width, ratio, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		var (
			ww  = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			now = time.Now()
		)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(now),
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
	return http.HandlerFunc(fn)
}

func infoOf(ch charts.Chart) ChartInfo {
	return ChartInfo{
		Name:        ch.Name,
		Caption:     ch.Caption,
		Description: ch.Description,
		Aspect:      ch.Aspect(),
		Formats:     canvas.Formats(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{
		Success: false,
		Error:   msg,
	})
}
