package hint

import (
	"context"
	"fmt"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

// Forced implements a minimal Hinter that suggests the first blank cell
// whose value is pinned down by a single-blank row or column.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint scans row-major for a blank that is the last blank of its row
// or column and returns the digit the sums force there.
func (h *Forced) Hint(ctx context.Context, puzzle domain.Grid, rowSums, colSums []int) (domain.Hint, bool, error) {
	size := puzzle.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if puzzle[r][c] != domain.Blank {
				continue
			}
			if v, ok := forcedByRow(puzzle, rowSums, r); ok {
				return makeHint(r, c, v, "row"), true, nil
			}
			if v, ok := forcedByCol(puzzle, colSums, c); ok {
				return makeHint(r, c, v, "column"), true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func makeHint(r, c, v int, axis string) domain.Hint {
	return domain.Hint{
		Message: fmt.Sprintf("The %s sum leaves only %d for this cell", axis, v),
		Cell:    domain.CellCoord{Row: r, Col: c},
		Value:   v,
	}
}

func forcedByRow(puzzle domain.Grid, rowSums []int, r int) (int, bool) {
	blanks, known := 0, 0
	for j := 0; j < puzzle.Size(); j++ {
		if puzzle[r][j] == domain.Blank {
			blanks++
		} else {
			known += puzzle[r][j]
		}
	}
	v := rowSums[r] - known
	return v, blanks == 1 && v >= 1 && v <= 9
}

func forcedByCol(puzzle domain.Grid, colSums []int, c int) (int, bool) {
	blanks, known := 0, 0
	for i := 0; i < puzzle.Size(); i++ {
		if puzzle[i][c] == domain.Blank {
			blanks++
		} else {
			known += puzzle[i][c]
		}
	}
	v := colSums[c] - known
	return v, blanks == 1 && v >= 1 && v <= 9
}
