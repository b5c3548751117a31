package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hn770123/sum-puzzle1/internal/checker"
	"github.com/hn770123/sum-puzzle1/internal/generator"
	"github.com/hn770123/sum-puzzle1/internal/hint"
	"github.com/hn770123/sum-puzzle1/internal/solver"
	"github.com/hn770123/sum-puzzle1/internal/usecase"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(
		generator.New(solver.NewPropagation()),
		checker.New(),
		hint.NewForced(),
	)
	mux := http.NewServeMux()
	New(uc, nil).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	mux := newMux(t)
	w := post(t, mux, "/api/generate", map[string]any{"size": 3, "blanks": 4, "seed": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Puzzle)
	assert.Equal(t, 3, resp.Puzzle.Size)
	assert.Equal(t, 4, resp.Puzzle.Puzzle.Blanks())
	assert.Len(t, resp.Puzzle.RowSums, 3)
	assert.Len(t, resp.Puzzle.ColSums, 3)
	assert.NotEmpty(t, resp.Puzzle.ID)
	assert.GreaterOrEqual(t, resp.Rounds, 1)
}

func TestGenerateEndpointDefaults(t *testing.T) {
	mux := newMux(t)
	w := post(t, mux, "/api/generate", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp generateResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Puzzle)
	assert.Equal(t, UISize, resp.Puzzle.Size)
	assert.Equal(t, UIBlanks, resp.Puzzle.Puzzle.Blanks())
}

func TestGenerateEndpointInvalidSize(t *testing.T) {
	mux := newMux(t)
	w := post(t, mux, "/api/generate", map[string]any{"size": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp generateResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
	assert.Nil(t, resp.Puzzle)
}

func TestGenerateEndpointMethodNotAllowed(t *testing.T) {
	mux := newMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCheckEndpoint(t *testing.T) {
	mux := newMux(t)
	sol := [][]int{{3, 5}, {2, 9}}

	w := post(t, mux, "/api/check", map[string]any{"cells": sol, "solution": sol})
	require.Equal(t, http.StatusOK, w.Code)
	var resp checkResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Mismatches)

	wrong := [][]int{{3, 4}, {2, 9}}
	w = post(t, mux, "/api/check", map[string]any{"cells": wrong, "solution": sol})
	require.Equal(t, http.StatusOK, w.Code)
	resp = checkResp{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.OK)
	require.Len(t, resp.Mismatches, 1)
	assert.Equal(t, 0, resp.Mismatches[0].Row)
	assert.Equal(t, 1, resp.Mismatches[0].Col)
}

func TestHintEndpoint(t *testing.T) {
	mux := newMux(t)
	w := post(t, mux, "/api/hint", map[string]any{
		"puzzle":  [][]int{{0, 5}, {2, 9}},
		"rowSums": []int{8, 11},
		"colSums": []int{5, 14},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp hintResp
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.True(t, resp.Found)
	assert.Equal(t, 3, resp.Hint.Value)
}

func TestHintEndpointSizeMismatch(t *testing.T) {
	mux := newMux(t)
	w := post(t, mux, "/api/hint", map[string]any{
		"puzzle":  [][]int{{0, 5}, {2, 9}},
		"rowSums": []int{8},
		"colSums": []int{5, 14},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
