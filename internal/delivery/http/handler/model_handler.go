package handler

import (
	"jobrank/internal/delivery/http/dto"
	"jobrank/internal/delivery/http/middleware"
	"jobrank/internal/pkg/response"
	"jobrank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ModelHandler struct {
	uc usecase.ModelUsecase
}

func NewModelHandler(uc usecase.ModelUsecase) *ModelHandler {
	return &ModelHandler{uc: uc}
}

func (h *ModelHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/model")
	grp.Get("/weights", h.GetWeights)
	grp.Get("/stats", h.GetStats)
}

func (h *ModelHandler) GetWeights(c fiber.Ctx) error {
	w, err := h.uc.GetWeights(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewModelWeightsResponse(w))
}

func (h *ModelHandler) GetStats(c fiber.Ctx) error {
	s, err := h.uc.GetStats(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewModelStatsResponse(s))
}
