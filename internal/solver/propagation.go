package solver

import "github.com/hn770123/sum-puzzle1/internal/domain"

// MaxRounds caps the simulation; a puzzle still unsolved after this
// many rounds scores MaxRounds.
const MaxRounds = 100

// Propagation scores puzzle difficulty by replaying the one-step
// deduction a player has available: if a row (or column) has exactly
// one blank left, that blank is the row (column) sum minus the known
// cells. The score is the number of scan rounds the simulation used.
type Propagation struct{}

func NewPropagation() *Propagation { return &Propagation{} }

// Estimate runs rounds over a working copy of puzzle until a round
// fills nothing, a round leaves no blanks, or MaxRounds is reached.
// Cells filled earlier in a round are visible to later cells of the
// same round; the scan is row-major and mutates the copy in place,
// which is what decides in which round each cell resolves. The first
// round always runs, so the score is at least 1 even for a puzzle
// with no blanks.
func (s *Propagation) Estimate(puzzle domain.Grid, rowSums, colSums []int) int {
	work := puzzle.Clone()
	size := work.Size()

	rounds := 0
	for rounds < MaxRounds {
		rounds++
		progress := false
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if work[r][c] != domain.Blank {
					continue
				}
				if fillByRow(work, rowSums, r, c) {
					progress = true
					continue // row inference wins; skip the column check
				}
				if fillByCol(work, colSums, r, c) {
					progress = true
				}
			}
		}
		if !progress {
			break
		}
		if work.Blanks() == 0 {
			break
		}
	}
	return rounds
}

// fillByRow fills work[r][c] when it is the only blank of row r and
// the inferred digit is in [1,9].
func fillByRow(work domain.Grid, rowSums []int, r, c int) bool {
	blanks, known := 0, 0
	for j := 0; j < work.Size(); j++ {
		if work[r][j] == domain.Blank {
			blanks++
		} else {
			known += work[r][j]
		}
	}
	if blanks != 1 {
		return false
	}
	v := rowSums[r] - known
	if v < 1 || v > 9 {
		return false
	}
	work[r][c] = v
	return true
}

// fillByCol is the column-based counterpart of fillByRow.
func fillByCol(work domain.Grid, colSums []int, r, c int) bool {
	blanks, known := 0, 0
	for i := 0; i < work.Size(); i++ {
		if work[i][c] == domain.Blank {
			blanks++
		} else {
			known += work[i][c]
		}
	}
	if blanks != 1 {
		return false
	}
	v := colSums[c] - known
	if v < 1 || v > 9 {
		return false
	}
	work[r][c] = v
	return true
}
