package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hn770123/sum-puzzle1/internal/domain"
)

func TestCheckWin(t *testing.T) {
	sol := domain.Grid{{3, 5}, {2, 9}}
	ok, mism, err := New().Check(context.Background(), domain.Grid{{3, 5}, {2, 9}}, sol)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, mism)
}

func TestCheckReportsMismatchedCells(t *testing.T) {
	sol := domain.Grid{{3, 5}, {2, 9}}
	got := domain.Grid{{3, 4}, {0, 9}} // one wrong digit, one still blank
	ok, mism, err := New().Check(context.Background(), got, sol)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, mism)
}

func TestCheckShapeMismatch(t *testing.T) {
	sol := domain.Grid{{3, 5}, {2, 9}}
	_, _, err := New().Check(context.Background(), domain.Grid{{3}}, sol)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = New().Check(context.Background(), domain.Grid{{3, 5}, {2}}, sol)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
