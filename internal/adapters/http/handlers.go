package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hn770123/sum-puzzle1/internal/domain"
	"github.com/hn770123/sum-puzzle1/internal/ports"
	"github.com/hn770123/sum-puzzle1/internal/usecase"
)

// Defaults used when a generate request omits size or blanks. The web
// UI plays on a 5×5 grid with 10 blanks; the engine's own defaults are
// smaller.
const (
	UISize   = 5
	UIBlanks = 10
)

type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{UC: uc, Logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/hint", h.handleHint)
}

// ---- Generate ----

type generateReq struct {
	Size   int   `json:"size,omitempty"`
	Blanks int   `json:"blanks,omitempty"`
	Seed   int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Snapshot `json:"puzzle,omitempty"`
	DurationMs int64            `json:"durationMs,omitempty"`
	Rounds     int              `json:"rounds,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	size := req.Size
	if size == 0 {
		size = UISize
	}
	blanks := req.Blanks
	if blanks == 0 {
		blanks = UIBlanks
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	obs := ports.ProgressFunc(func(pct int) {
		h.Logger.Debug("generate progress", "pct", pct)
	})
	snap, st, err := h.UC.Generate(r.Context(), seed, size, blanks, obs)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Puzzle:     snap,
		DurationMs: st.Duration.Milliseconds(),
		Rounds:     st.Rounds,
	})
}

// ---- Check ----

type checkReq struct {
	Cells    domain.Grid `json:"cells"`
	Solution domain.Grid `json:"solution"`
}
type checkResp struct {
	OK         bool               `json:"ok"`
	Mismatches []domain.CellCoord `json:"mismatches,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, mism, err := h.UC.Check(r.Context(), req.Cells, req.Solution)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(checkResp{OK: ok, Mismatches: mism})
}

// ---- Hint ----

type hintReq struct {
	Puzzle  domain.Grid `json:"puzzle"`
	RowSums []int       `json:"rowSums"`
	ColSums []int       `json:"colSums"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Puzzle) != len(req.RowSums) || len(req.Puzzle) != len(req.ColSums) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "puzzle and sums differ in size"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Puzzle, req.RowSums, req.ColSums)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}
