package handler

import (
	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc       usecase.JobUsecase
	validate *validator.Validate
}

func NewJobsHandler(uc usecase.JobUsecase, validate *validator.Validate) *JobsHandler {
	return &JobsHandler{uc: uc, validate: validate}
}

// RegisterRoutes mounts the job board. Reads are public, writes are limited
// to employers and ownership is checked by the usecase.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	employer := middleware.RequireRole(user.RoleEmployer)

	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/match-summary", auth, employer, h.MatchSummary)
	grp.Post("/", auth, employer, h.Create)
	grp.Put("/:id", auth, employer, h.Update)
	grp.Delete("/:id", auth, employer, h.Deactivate)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), actor, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", created)
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), actor, c.Params("id"), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", updated)
}

func (h *JobsHandler) Deactivate(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Context(), actor, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deactivated", nil)
}

func (h *JobsHandler) MatchSummary(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	s, err := h.uc.MatchSummary(c.Context(), actor, c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchSummaryResponse(s))
}
