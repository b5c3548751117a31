package checker

import (
	"context"
	"errors"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

var ErrShapeMismatch = errors.New("submission and solution differ in shape")

// CellChecker detects the win state: a submission wins when every cell
// equals the solution. Blanks the player has not filled yet count as
// mismatches.
type CellChecker struct{}

func New() *CellChecker { return &CellChecker{} }

func (v *CellChecker) Check(ctx context.Context, got, want domain.Grid) (bool, []domain.CellCoord, error) {
	if got.Size() != want.Size() {
		return false, nil, ErrShapeMismatch
	}
	mism := make([]domain.CellCoord, 0, 8)
	for r := range want {
		if len(got[r]) != len(want[r]) {
			return false, nil, ErrShapeMismatch
		}
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				mism = append(mism, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(mism) == 0, mism, nil
}
