package usecase

import (
	"context"

	"jobrank/internal/domain/ranking"
)

type ModelUsecase interface {
	GetWeights(ctx context.Context) (ranking.ModelWeights, error)
	GetStats(ctx context.Context) (ranking.ModelStats, error)
}

type Model struct {
	model *ranking.Model
}

func NewModelUsecase(model *ranking.Model) *Model {
	return &Model{model: model}
}

func (u *Model) GetWeights(_ context.Context) (ranking.ModelWeights, error) {
	if u.model == nil {
		return ranking.ModelWeights{}, ErrInternal
	}
	return u.model.Weights(), nil
}

func (u *Model) GetStats(_ context.Context) (ranking.ModelStats, error) {
	if u.model == nil {
		return ranking.ModelStats{}, ErrInternal
	}
	return u.model.Stats(), nil
}
