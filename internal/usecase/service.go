package usecase

import (
	"context"
	"errors"

	"github.com/hn770123/sum-puzzle1/internal/domain"
	"github.com/hn770123/sum-puzzle1/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Checker   ports.Checker
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, c ports.Checker, h ports.Hinter) *Service {
	return &Service{Generator: g, Checker: c, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, size, blanks int, obs ports.Progress) (*domain.Snapshot, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, blanks, obs)
}

func (u *Service) Check(ctx context.Context, got, want domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Checker == nil {
		return false, nil, errNotConfigured
	}
	return u.Checker.Check(ctx, got, want)
}

func (u *Service) Hint(ctx context.Context, puzzle domain.Grid, rowSums, colSums []int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, puzzle, rowSums, colSums)
}
