package handler

import (
	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type CandidateSkillHandler struct {
	uc       usecase.CandidateSkillUsecase
	validate *validator.Validate
}

func NewCandidateSkillHandler(uc usecase.CandidateSkillUsecase, validate *validator.Validate) *CandidateSkillHandler {
	return &CandidateSkillHandler{uc: uc, validate: validate}
}

func (h *CandidateSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *CandidateSkillHandler) List(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateSkillResponses(items))
}

func (h *CandidateSkillHandler) Add(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.AddCandidateSkillRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	added, err := h.uc.Add(c.Context(), actor.UserID, req.Name, req.Level)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCandidateSkillResponse(added))
}

func (h *CandidateSkillHandler) Update(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCandidateSkillRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateLevel(c.Context(), actor.UserID, c.Params("id"), req.Level)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateSkillResponse(updated))
}

func (h *CandidateSkillHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Context(), actor.UserID, c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
