package domain

// Blank marks a masked cell. Digits occupy [1,9], so zero is free.
const Blank = 0

// Grid is a square matrix of digits. In a solution every cell is in
// [1,9]; in a puzzle, masked cells hold Blank.
type Grid [][]int

// NewGrid allocates a size×size grid of Blank cells.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

// Clone returns a deep copy; mutating the copy never touches the original.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// Size returns the edge length of the grid.
func (g Grid) Size() int { return len(g) }

// Blanks counts cells still holding the Blank marker.
func (g Grid) Blanks() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == Blank {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint points the UI at a cell whose value is currently forced by a
// single-blank row or column.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   int       `json:"value"`
}

// Snapshot is the full result of one generation pass and the sole
// contract consumed by presentation layers.
type Snapshot struct {
	ID       string     `json:"id,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
	Size     int        `json:"size"`
	Puzzle   Grid       `json:"puzzle"`
	Solution Grid       `json:"solution"`
	RowSums  []int      `json:"rowSums"`
	ColSums  []int      `json:"colSums"`
	Score    int        `json:"score"`
	Label    Difficulty `json:"difficulty"`
}
