package handler

import (
	"context"
	"time"

	"skill-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health always answers 200 while the process serves. Dependency state is
// reported in the body.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if chk.Check == nil {
			continue
		}
		if err := chk.Check(ctx); err != nil {
			deps[chk.Name] = "down"
			continue
		}
		deps[chk.Name] = "up"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"status":       "ok",
		"dependencies": deps,
	})
}
