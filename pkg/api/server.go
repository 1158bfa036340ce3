// Package api serves the estimation engine, recommender and preset store as
// a JSON HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/stackquote/stackquote/pkg/config"
	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/logging"
	"github.com/stackquote/stackquote/pkg/models"
	"github.com/stackquote/stackquote/pkg/preset"
	"github.com/stackquote/stackquote/pkg/quote"
	"github.com/stackquote/stackquote/pkg/recommend"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server is the stackquote HTTP API.
type Server struct {
	cfg     *config.Config
	engine  *estimate.Engine
	presets *preset.Manager
	log     *zap.Logger
	mux     *http.ServeMux
}

// New creates a Server. A nil engine uses the default catalog and a nil
// logger discards output.
func New(cfg *config.Config, e *estimate.Engine, m *preset.Manager, log *zap.Logger) *Server {
	if e == nil {
		e = estimate.New(nil)
	}
	s := &Server{
		cfg:     cfg,
		engine:  e,
		presets: m,
		log:     logging.OrNop(log),
		mux:     http.NewServeMux(),
	}
	s.mux.HandleFunc("/v1/estimate", s.handleEstimate)
	s.mux.HandleFunc("/v1/estimate/batch", s.handleBatch)
	s.mux.HandleFunc("/v1/recommendations", s.handleRecommendations)
	s.mux.HandleFunc("/v1/catalog", s.handleCatalog)
	s.mux.HandleFunc("/v1/presets", s.handlePresets)
	s.mux.HandleFunc("/v1/presets/{name}", s.handlePreset)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// ListenAndServe starts the API server with graceful shutdown support.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("stackquote api listening", zap.String("addr", s.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) locale(r *http.Request) recommend.Locale {
	if l := r.URL.Query().Get("locale"); l != "" {
		return recommend.ParseLocale(l)
	}
	return recommend.ParseLocale(s.cfg.Locale)
}

// handleEstimate prices one project. With ?format=text the plain-text
// quotation is returned instead of JSON.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var p models.Project
	if err := decodeBody(w, r, &p); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateProject(p); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := s.engine.Estimate(p)
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, quote.Text(p, res.Breakdown, s.locale(r)))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type batchRequest struct {
	Projects []models.Project `json:"projects"`
}

type batchResponse struct {
	Results []estimate.Result `json:"results"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	for i, p := range req.Projects {
		if err := validateProject(p); err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("project %d: %s", i, err))
			return
		}
	}

	results, err := s.engine.Batch(r.Context(), req.Projects, s.cfg.Batch.Workers)
	if err != nil {
		s.log.Warn("batch cancelled", zap.Error(err), zap.Int("projects", len(req.Projects)))
		writeJSONError(w, http.StatusServiceUnavailable, "batch cancelled")
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	users := s.cfg.Defaults.UserCount
	if v := q.Get("users"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSONError(w, http.StatusBadRequest, "users must be a non-negative integer")
			return
		}
		users = n
	}
	calls := s.cfg.Defaults.APICallsPerUserPerMonth
	if v := q.Get("calls"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			writeJSONError(w, http.StatusBadRequest, "calls must be a non-negative number")
			return
		}
		calls = f
	}

	rec := recommend.New(s.engine.Catalog(), s.locale(r))
	writeJSON(w, http.StatusOK, rec.All(users, calls))
}

type catalogResponse struct {
	Models         []models.AIModel  `json:"models"`
	Infrastructure []models.Provider `json:"infrastructure"`
	Databases      []models.Provider `json:"databases"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	c := s.engine.Catalog()
	writeJSON(w, http.StatusOK, catalogResponse{
		Models:         c.Models(),
		Infrastructure: c.Infrastructure(),
		Databases:      c.Databases(),
	})
}

type savePresetRequest struct {
	Name    string         `json:"name"`
	Project models.Project `json:"project"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if s.presets == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "presets not configured")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.presets.List())

	case http.MethodPost:
		var req savePresetRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validateProject(req.Project); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		saved, err := s.presets.Add(r.Context(), req.Name, req.Project)
		if errors.Is(err, preset.ErrEmptyName) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			s.log.Error("save preset", zap.Error(err))
			writeJSONError(w, http.StatusInternalServerError, "failed to save preset")
			return
		}
		s.log.Debug("preset saved", zap.String("name", saved.Name))
		writeJSON(w, http.StatusCreated, saved)

	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	if s.presets == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "presets not configured")
		return
	}

	name := r.PathValue("name")
	switch r.Method {
	case http.MethodGet:
		p, err := s.presets.Get(name)
		if errors.Is(err, preset.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		n, err := s.presets.DeleteByName(r.Context(), name)
		if errors.Is(err, preset.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			s.log.Error("delete preset", zap.Error(err))
			writeJSONError(w, http.StatusInternalServerError, "failed to delete preset")
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"deleted": n})

	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validateProject(p models.Project) error {
	if p.UserCount < 0 {
		return errors.New("user_count must not be negative")
	}
	if p.APICallsPerUserPerMonth < 0 {
		return errors.New("api_calls_per_user_per_month must not be negative")
	}
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"message":%q,"type":"stackquote_error","code":%d}}`, message, code)
}
