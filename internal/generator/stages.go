package generator

import (
	"math/rand"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

// fillGrid draws every cell independently and uniformly from [1,9].
// Rows and columns may repeat digits; this is a sum puzzle, not Sudoku.
func fillGrid(rng *rand.Rand, size int) domain.Grid {
	g := domain.NewGrid(size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			g[r][c] = minDigit + rng.Intn(maxDigit-minDigit+1)
		}
	}
	return g
}

// computeSums totals each row and column of the solution grid. Pure;
// the sums are computed once and never re-derived from the puzzle.
func computeSums(g domain.Grid) (rowSums, colSums []int) {
	size := g.Size()
	rowSums = make([]int, size)
	colSums = make([]int, size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			rowSums[r] += g[r][c]
			colSums[c] += g[r][c]
		}
	}
	return rowSums, colSums
}

// maskCells blanks min(k, size²) cells of a copy of grid. The blanked
// positions are the head of a Fisher–Yates shuffle of all coordinates,
// so every subset of that size is equally likely. The input grid is
// left untouched.
func maskCells(rng *rand.Rand, grid domain.Grid, k int) domain.Grid {
	size := grid.Size()
	total := size * size
	if k > total {
		k = total
	}
	if k < 0 {
		k = 0
	}

	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(total, func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	puzzle := grid.Clone()
	for _, pos := range positions[:k] {
		puzzle[pos/size][pos%size] = domain.Blank
	}
	return puzzle
}
