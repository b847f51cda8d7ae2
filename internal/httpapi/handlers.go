package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rybkr/diagoku/internal/solver"
)

// Handler serves the solver over JSON.
type Handler struct {
	// Timeout bounds each solve request.
	Timeout time.Duration

	log *logrus.Logger
}

// New creates a Handler logging through log with the given per-request
// solve timeout.
func New(log *logrus.Logger, timeout time.Duration) *Handler {
	return &Handler{Timeout: timeout, log: log}
}

// Register installs the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/healthz", h.handleHealth)
}

type solveReq struct {
	Puzzle string `json:"puzzle"`
	Trace  bool   `json:"trace,omitempty"`
}

type solveResp struct {
	Solution   string        `json:"solution,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Trace      []solver.Step `json:"trace,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "malformed request body"})
		return
	}

	opts := &solver.Options{Timeout: h.Timeout}
	if req.Trace {
		opts.Trace = &solver.Trace{}
	}

	solved, stats, err := solver.Solve(r.Context(), req.Puzzle, opts)
	if err != nil {
		h.log.WithError(err).WithField("puzzle", req.Puzzle).Debug("solve failed")
		switch {
		case errors.Is(err, solver.ErrNoSolution):
			writeJSON(w, http.StatusUnprocessableEntity, solveResp{
				Nodes:      stats.Nodes,
				DurationMs: stats.Duration.Milliseconds(),
				Error:      "no solution",
			})
		case errors.Is(err, solver.ErrTimeout):
			writeJSON(w, http.StatusGatewayTimeout, solveResp{Error: "solve timed out"})
		default:
			writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, solveResp{
		Solution:   solved.String(),
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
		Trace:      opts.Trace.Steps(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
