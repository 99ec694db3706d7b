package handler

import (
	"errors"
	"strconv"

	"able-match/internal/delivery/http/dto"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/pkg/response"
	"able-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/rankings", h.GetRankings)
}

func (h *RankingHandler) GetRankings(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	minScore, err := queryInt(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.GetRankings(c.Context(), userID, usecase.RankingParams{
		Limit:    limit,
		Offset:   offset,
		MinScore: minScore,
	})
	if err != nil {
		return mapRankingError(err)
	}

	out := make([]dto.RankingItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RankingItemResponse{
			JobID:      it.JobID,
			Score:      it.Score,
			MatchLevel: it.MatchLevel,
			Breakdown: dto.RankingBreakdownResponse{
				Skills:        it.Breakdown.Skills,
				Accessibility: it.Breakdown.Accessibility,
				Location:      it.Breakdown.Location,
				Salary:        it.Breakdown.Salary,
				Arrangement:   it.Breakdown.Arrangement,
			},
			Reasons: it.Reasons,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRankingError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
