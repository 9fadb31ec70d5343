package handler

import (
	"errors"

	"jobrank/internal/delivery/http/dto"
	"jobrank/internal/delivery/http/middleware"
	"jobrank/internal/domain/ranking"
	"jobrank/internal/pkg/response"
	"jobrank/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RankHandler struct {
	uc usecase.RankUsecase
}

func NewRankHandler(uc usecase.RankUsecase) *RankHandler {
	return &RankHandler{uc: uc}
}

func (h *RankHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/rankings", h.Rank)
	r.Delete("/rankings/cache", h.InvalidateCache)
}

func (h *RankHandler) Rank(c fiber.Ctx) error {
	var req dto.RankRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	candidateID := candidateIDFromCtx(c, req.CandidateID)

	params := usecase.RankParams{
		Candidate:    req.Candidate.ToDomain(candidateID),
		Jobs:         make([]ranking.JobPosting, 0, len(req.Jobs)),
		Similarities: req.Similarities,
	}
	for _, j := range req.Jobs {
		params.Jobs = append(params.Jobs, j.ToDomain())
	}

	ranked, err := h.uc.RankJobs(c.Context(), params)
	if err != nil {
		return mapRankUsecaseError(err)
	}

	out := make([]dto.RankedJobResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.NewRankedJobResponse(r))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// InvalidateCache drops the candidate's cached similarity maps, typically
// after they update their profile. In trusted internal mode the candidate id
// comes from the candidate_id query parameter.
func (h *RankHandler) InvalidateCache(c fiber.Ctx) error {
	fallback, _ := uuid.Parse(c.Query("candidate_id"))
	candidateID := candidateIDFromCtx(c, fallback)

	if err := h.uc.InvalidateSimilarities(c.Context(), candidateID); err != nil {
		return mapRankUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func candidateIDFromCtx(c fiber.Ctx, fallback uuid.UUID) uuid.UUID {
	if id, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID); ok && id != uuid.Nil {
		return id
	}
	return fallback
}

func mapRankUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNoJobs):
		return middleware.NewAppError(fiber.StatusBadRequest, "No jobs to rank", nil, err)
	case errors.Is(err, usecase.ErrTooManyJobs):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Too many jobs in one request", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
