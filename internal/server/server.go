// Package server exposes the goal planner over HTTP. Handlers operate on an
// explicit portfolio snapshot: every mutation builds a new snapshot, writes
// it through to the store when one is attached, and only then replaces the
// served state.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/fincast/goalplanner/internal/advisor"
	"github.com/fincast/goalplanner/internal/analysis"
	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/internal/projection"
	"github.com/fincast/goalplanner/internal/scenario"
	"github.com/fincast/goalplanner/internal/store"
	"github.com/fincast/goalplanner/pkg/output"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger   *zap.Logger
	st       store.Store
	calc     *projection.Calculator
	analyzer *analysis.Analyzer
	engine   *scenario.Engine

	mu      sync.Mutex
	current goal.Portfolio
}

// NewHandler constructs the HTTP handler serving the planner API. The store
// may be nil, in which case state lives only in memory for the process.
func NewHandler(logger *zap.Logger, st store.Store) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	calc := projection.NewCalculator(logger)
	h := &handler{
		logger:   logger,
		st:       st,
		calc:     calc,
		analyzer: analysis.NewAnalyzer(logger),
		engine:   scenario.NewEngine(calc, logger),
		current:  store.LoadOrDefault(st, logger),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/portfolio", h.handleGetPortfolio).Methods(http.MethodGet)
	r.HandleFunc("/api/portfolio", h.handlePutPortfolio).Methods(http.MethodPut)
	r.HandleFunc("/api/goals", h.handleAddGoal).Methods(http.MethodPost)
	r.HandleFunc("/api/goals/{id}", h.handleUpdateGoal).Methods(http.MethodPut)
	r.HandleFunc("/api/goals/{id}", h.handleRemoveGoal).Methods(http.MethodDelete)
	r.HandleFunc("/api/goals/{id}/compute", h.handleCompute).Methods(http.MethodPost)
	r.HandleFunc("/api/goals/{id}/scenarios", h.handleScenarios).Methods(http.MethodGet)
	r.HandleFunc("/api/goals/{id}/summary", h.handleGoalSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/summary", h.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/export", h.handleExportCSV).Methods(http.MethodGet)
	r.HandleFunc("/api/export/yaml", h.handleExportYAML).Methods(http.MethodGet)
	return r
}

// snapshot returns the current portfolio without holding the lock.
func (h *handler) snapshot() goal.Portfolio {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// replace persists the next snapshot and swaps it in. The swap is skipped
// when the write-through fails so served state never runs ahead of disk.
func (h *handler) replace(next goal.Portfolio) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.st != nil {
		if err := h.st.Save(next); err != nil {
			return err
		}
	}
	h.current = next
	return nil
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func goalID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func (h *handler) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.snapshot())
}

type portfolioUpdate struct {
	RiskProfile   string  `json:"riskProfile"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

func (h *handler) handlePutPortfolio(w http.ResponseWriter, r *http.Request) {
	var update portfolioUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	next := h.snapshot()
	next.RiskProfile = goal.ParseRiskProfile(update.RiskProfile)
	next.MonthlyIncome = update.MonthlyIncome
	if err := h.replace(next); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to persist portfolio")
		return
	}
	h.writeJSON(w, http.StatusOK, next)
}

func (h *handler) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var in goal.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	next := h.snapshot().AddGoal(in)
	if err := h.replace(next); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to persist portfolio")
		return
	}
	h.writeJSON(w, http.StatusCreated, next.Goals[len(next.Goals)-1])
}

func (h *handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	var in goal.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	next, found := h.snapshot().UpdateGoal(id, in)
	if !found {
		h.writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err := h.replace(next); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to persist portfolio")
		return
	}
	updated, _ := next.Goal(id)
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *handler) handleRemoveGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	next, found := h.snapshot().RemoveGoal(id)
	if !found {
		h.writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err := h.replace(next); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to persist portfolio")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	current := h.snapshot()
	g, found := current.Goal(id)
	if !found {
		h.writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	next, _ := current.ReplaceResults(id, h.calc.Project(g.Input.Normalize()))
	if err := h.replace(next); err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to persist portfolio")
		return
	}
	computed, _ := next.Goal(id)
	h.writeJSON(w, http.StatusOK, computed)
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	g, found := h.snapshot().Goal(id)
	if !found {
		h.writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	h.writeJSON(w, http.StatusOK, h.engine.Variants(g.Input))
}

func (h *handler) handleGoalSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := goalID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}
	current := h.snapshot()
	g, found := current.Goal(id)
	if !found {
		h.writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(advisor.Summary(g, current.RiskProfile, current.MonthlyIncome)))
}

func (h *handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.analyzer.Summarize(h.snapshot()))
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="goals.csv"`)
	output.CsvFormat(w, h.snapshot())
}

func (h *handler) handleExportYAML(w http.ResponseWriter, r *http.Request) {
	raw, err := yaml.Marshal(h.snapshot())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to serialize portfolio")
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.yaml"`)
	_, _ = w.Write(raw)
}
