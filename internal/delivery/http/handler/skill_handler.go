package handler

import (
	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc       usecase.SkillUsecase
	validate *validator.Validate
}

func NewSkillHandler(uc usecase.SkillUsecase, validate *validator.Validate) *SkillHandler {
	return &SkillHandler{uc: uc, validate: validate}
}

// RegisterRoutes mounts the catalog. Listing is public, adding requires auth.
func (h *SkillHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", auth, h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.CatalogSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewCatalogSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.AddSkill(c.Context(), req.Name, req.Category)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", dto.NewCatalogSkillResponse(created))
}
