package handler

import (
	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/domain/matching"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// MatchHandler serves the job seeker's view of the corpus: per job scores,
// the ranked list, skill recommendations and the dashboard.
type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	me := r.Group("/me")
	me.Get("/matches", h.Rank)
	me.Get("/matches/:job_id", h.Match)
	me.Get("/recommendations/skills", h.Recommend)
	me.Get("/dashboard", h.Dashboard)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	res, err := h.uc.MatchJob(c.Context(), actor.UserID, c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) Rank(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return err
	}

	ranked, err := h.uc.RankJobs(c.Context(), actor.UserID, minScore)
	if err != nil {
		return mapUsecaseError(err)
	}
	if ranked == nil {
		ranked = []matching.RankedJob{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ranked)
}

// Recommend treats a missing or non-positive limit as the default.
func (h *MatchHandler) Recommend(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	limit, err := parseQueryIntStrict(c, "limit", matching.DefaultRecommendationLimit)
	if err != nil {
		return err
	}

	recs, err := h.uc.RecommendSkills(c.Context(), actor.UserID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendedSkills(recs))
}

func (h *MatchHandler) Dashboard(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	d, err := h.uc.Dashboard(c.Context(), actor.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDashboardResponse(d))
}
