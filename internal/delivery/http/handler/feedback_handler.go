package handler

import (
	"errors"

	"jobrank/internal/delivery/http/dto"
	"jobrank/internal/delivery/http/middleware"
	"jobrank/internal/pkg/response"
	"jobrank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/feedback", h.RecordInteraction)
}

func (h *FeedbackHandler) RecordInteraction(c fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params := usecase.FeedbackParams{
		CandidateID: candidateIDFromCtx(c, req.CandidateID),
		JobID:       req.JobID,
		Interaction: usecase.InteractionType(req.Interaction),
		Features:    req.Features.ToDomain(),
	}

	if err := h.uc.RecordInteraction(c.Context(), params); err != nil {
		return mapFeedbackUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapFeedbackUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrUnknownInteraction):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unknown interaction type", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
