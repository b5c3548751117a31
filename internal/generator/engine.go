package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hn770123/sum-puzzle1/internal/domain"
	"github.com/hn770123/sum-puzzle1/internal/ports"
)

const (
	// DefaultSize is the engine's own default edge length; the web UI
	// asks for 5.
	DefaultSize = 4
	// DefaultBlanks is the engine's own default mask count; the web UI
	// asks for 10.
	DefaultBlanks = 6

	minDigit = 1
	maxDigit = 9
)

// Progress percentages reported between pipeline stages.
const (
	pctStart  = 0
	pctGrid   = 30
	pctSums   = 50
	pctMasked = 70
	pctScored = 100
)

var ErrInvalidSize = errors.New("grid size must be a positive integer")

// Engine runs the four-stage puzzle pipeline: fill a complete grid,
// derive row/column sums, mask cells, and score difficulty with the
// injected estimator. One call to Generate builds one puzzle; all
// working state is per-call, so an Engine is safe to share.
type Engine struct {
	Estimator ports.Estimator
}

// New wires an engine that scores puzzles with the given estimator.
func New(est ports.Estimator) *Engine {
	return &Engine{Estimator: est}
}

// Generate builds a snapshot. Stages run synchronously in order; obs,
// if non-nil, is told 0, 30, 50, 70, 100 between them. A blank count
// above size² is clamped to size². There is no cancellation once the
// pipeline starts; ctx is only honored at entry.
func (e *Engine) Generate(ctx context.Context, seed int64, size, blanks int, obs ports.Progress) (*domain.Snapshot, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	if size < 1 {
		return nil, ports.Stats{}, ErrInvalidSize
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	emit(obs, pctStart)
	grid := fillGrid(rng, size)
	emit(obs, pctGrid)
	rowSums, colSums := computeSums(grid)
	emit(obs, pctSums)
	puzzle := maskCells(rng, grid, blanks)
	emit(obs, pctMasked)
	score := e.Estimator.Estimate(puzzle, rowSums, colSums)
	emit(obs, pctScored)

	snap := &domain.Snapshot{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Seed:     seed,
		Size:     size,
		Puzzle:   puzzle,
		Solution: grid,
		RowSums:  rowSums,
		ColSums:  colSums,
		Score:    score,
		Label:    domain.Grade(score),
	}
	return snap, ports.Stats{Rounds: score, Duration: time.Since(start)}, nil
}

func emit(obs ports.Progress, pct int) {
	if obs != nil {
		obs.Progress(pct)
	}
}
