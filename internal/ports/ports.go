package ports

import (
	"context"
	"time"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Rounds   int
	Duration time.Duration
}

// Progress observes generation progress as integer percentages in a
// non-decreasing sequence. Implementations must tolerate being called
// zero or more times.
type Progress interface {
	Progress(pct int)
}

// ProgressFunc adapts a plain function to the Progress interface.
type ProgressFunc func(pct int)

func (f ProgressFunc) Progress(pct int) { f(pct) }

// Generator builds a complete puzzle snapshot from a seed, grid size,
// and blank-cell count. obs may be nil.
type Generator interface {
	Generate(ctx context.Context, seed int64, size, blanks int, obs Progress) (*domain.Snapshot, Stats, error)
}

// Estimator scores puzzle difficulty by simulated solving.
type Estimator interface {
	Estimate(puzzle domain.Grid, rowSums, colSums []int) int
}

// Checker compares a player submission against the solution cell by cell.
type Checker interface {
	Check(ctx context.Context, got, want domain.Grid) (ok bool, mismatches []domain.CellCoord, err error)
}

// Hinter returns a currently forced cell, if one exists.
type Hinter interface {
	Hint(ctx context.Context, puzzle domain.Grid, rowSums, colSums []int) (domain.Hint, bool, error)
}
