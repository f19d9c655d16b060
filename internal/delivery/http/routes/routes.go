package routes

import (
	"skill-match/internal/delivery/http/handler"
	"skill-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups every HTTP handler the API mounts. WS may be nil when the
// realtime hub is disabled.
type Handlers struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	Skills          *handler.SkillHandler
	CandidateSkills *handler.CandidateSkillHandler
	Jobs            *handler.JobsHandler
	Matches         *handler.MatchHandler
	WS              interface{ RegisterRoutes(fiber.Router) }
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{h: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	if r.h.WS != nil {
		r.h.WS.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")
	authMw := r.auth.Middleware()

	r.h.Auth.RegisterRoutes(v1.Group("/auth"))
	r.h.Skills.RegisterRoutes(v1, authMw)
	r.h.Jobs.RegisterRoutes(v1, authMw)

	protected := v1.Group("", authMw)
	protected.Get("/me", r.h.Auth.Me)
	r.h.CandidateSkills.RegisterRoutes(protected)
	r.h.Matches.RegisterRoutes(protected)
}
