package usecase

import (
	"context"
	"errors"

	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

var ErrUnknownInteraction = errors.New("Unknown interaction type")

type InteractionType string

const (
	InteractionView  InteractionType = "view"
	InteractionClick InteractionType = "click"
	InteractionSave  InteractionType = "save"
	InteractionApply InteractionType = "apply"
)

// relevanceLabels is the fixed interaction-to-label mapping. The model itself is
// agnostic to interaction semantics; this is the one place they are decided.
var relevanceLabels = map[InteractionType]float64{
	InteractionView:  0.3,
	InteractionClick: 0.5,
	InteractionSave:  0.7,
	InteractionApply: 1.0,
}

func RelevanceLabel(t InteractionType) (float64, bool) {
	label, ok := relevanceLabels[t]
	return label, ok
}

type FeedbackParams struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Interaction InteractionType
	Features    ranking.FeatureVector
}

type FeedbackUsecase interface {
	RecordInteraction(ctx context.Context, params FeedbackParams) error
}

type Feedback struct {
	model *ranking.Model
}

func NewFeedbackUsecase(model *ranking.Model) *Feedback {
	return &Feedback{model: model}
}

func (u *Feedback) RecordInteraction(ctx context.Context, params FeedbackParams) error {
	if params.CandidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if params.JobID == uuid.Nil {
		return ErrInvalidInput
	}

	label, ok := RelevanceLabel(params.Interaction)
	if !ok {
		return ErrUnknownInteraction
	}

	pairID := params.CandidateID.String() + ":" + params.JobID.String()
	u.model.RecordInteraction(ctx, pairID, params.Features, label)
	return nil
}
