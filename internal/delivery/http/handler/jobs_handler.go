package handler

import (
	"time"

	"able-match/internal/delivery/http/dto"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/pkg/response"
	"able-match/internal/repository"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs repository.JobRepository
}

func NewJobsHandler(jobs repository.JobRepository) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("", h.ListJobs)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.jobs.ListJobs(c.Context(), limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobListResponse, 0, len(items))
	for _, it := range items {
		posted := ""
		if it.PostedAt != nil && !it.PostedAt.IsZero() {
			posted = it.PostedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, dto.JobListResponse{
			ID:          it.ID.String(),
			Title:       it.Title,
			Company:     it.Company,
			City:        it.City,
			Arrangement: it.Arrangement,
			PostedAt:    posted,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
