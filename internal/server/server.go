package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/askiada/go-dtw/pkg/dtw"
	"github.com/askiada/go-dtw/pkg/dtw/model"
)

// Server exposes the dtw package over HTTP.
type Server struct {
	cfg Config
	log *log.Logger
}

func New(cfg Config, logger *log.Logger) *Server {
	return &Server{cfg: cfg, log: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/dtw", s.handleDTW)
		r.Post("/pairwise", s.handlePairwise)
	})

	return r
}

type dtwRequest struct {
	A         []float64 `json:"a"`
	B         []float64 `json:"b"`
	Metric    string    `json:"metric,omitempty"`
	Algorithm string    `json:"algorithm,omitempty"`
	Radius    *int      `json:"radius,omitempty"`
	Factor    *int      `json:"resolution,omitempty"`
}

type dtwResponse struct {
	Distance float64  `json:"distance"`
	Path     [][2]int `json:"path"`
}

type pairwiseRequest struct {
	Series    [][]float64 `json:"series"`
	Metric    string      `json:"metric,omitempty"`
	Algorithm string      `json:"algorithm,omitempty"`
	Workers   int         `json:"workers,omitempty"`
}

type pairwiseResponse struct {
	Matrix [][]float64 `json:"matrix"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/v1/dtw -> align two series
func (s *Server) handleDTW(w http.ResponseWriter, r *http.Request) {
	var req dtwRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cannot decode body", http.StatusBadRequest)

		return
	}
	if len(req.A) == 0 || len(req.B) == 0 {
		http.Error(w, "both series must be provided", http.StatusBadRequest)

		return
	}

	opts, algorithm, err := s.requestOptions(req.Metric, req.Algorithm, req.Radius, req.Factor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	var res *model.Result
	if algorithm == model.Fast {
		res, err = dtw.ComputeFast(req.A, req.B, opts...)
	} else {
		res, err = dtw.Compute(req.A, req.B, opts...)
	}
	if err != nil {
		s.log.Printf("dtw request failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	resp := dtwResponse{Distance: res.Distance, Path: make([][2]int, len(res.Path))}
	for i, point := range res.Path {
		resp.Path[i] = [2]int{point.Row, point.Column}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// POST /api/v1/pairwise -> distance matrix between many series
func (s *Server) handlePairwise(w http.ResponseWriter, r *http.Request) {
	var req pairwiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cannot decode body", http.StatusBadRequest)

		return
	}
	for _, series := range req.Series {
		if len(series) == 0 {
			http.Error(w, "series must not be empty", http.StatusBadRequest)

			return
		}
	}

	opts, _, err := s.requestOptions(req.Metric, req.Algorithm, nil, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}
	workers := s.cfg.PairwiseWorkers
	if req.Workers > 0 {
		workers = req.Workers
	}
	opts = append(opts, dtw.WithWorkers(workers))

	matrix, err := dtw.Pairwise(r.Context(), req.Series, opts...)
	if err != nil {
		s.log.Printf("pairwise request failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}
	s.writeJSON(w, http.StatusOK, pairwiseResponse{Matrix: matrix})
}

// requestOptions merges the request overrides with the configured
// defaults and returns the dtw options plus the chosen algorithm.
func (s *Server) requestOptions(metricName, algorithmName string, radius, factor *int) ([]dtw.Option, model.Algorithm, error) {
	if metricName == "" {
		metricName = s.cfg.DefaultMetric
	}
	metric, err := model.ParseMetric(metricName)
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid metric")
	}

	if algorithmName == "" {
		algorithmName = s.cfg.DefaultAlgorithm
	}
	algorithm, err := model.ParseAlgorithm(algorithmName)
	if err != nil {
		return nil, "", errors.Wrap(err, "invalid algorithm")
	}

	searchRadius := s.cfg.SearchRadius
	if radius != nil {
		searchRadius = *radius
	}
	resolutionFactor := s.cfg.ResolutionFactor
	if factor != nil {
		resolutionFactor = *factor
	}

	opts := []dtw.Option{
		dtw.WithMetric(metric),
		dtw.WithAlgorithm(algorithm),
		dtw.WithSearchRadius(searchRadius),
		dtw.WithResolutionFactor(resolutionFactor),
	}
	if s.cfg.MaxMatrixBytes > 0 {
		opts = append(opts, dtw.WithMaxMatrixBytes(s.cfg.MaxMatrixBytes))
	}

	return opts, algorithm, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Printf("cannot write response: %v", err)
	}
}
