package app

import (
	"context"
	"fmt"
	"strings"

	"skill-match/internal/delivery/http/handler"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/delivery/http/routes"
	"skill-match/internal/pkg/validation"
	"skill-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP application on top of an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Log)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap wires the container, starts the websocket hub and returns the
// app with a cleanup that stops both.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(log.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	v := validation.New()
	var checks []handler.HealthCheck
	if c.DB != nil {
		checks = append(checks, handler.HealthCheck{Name: "database", Check: c.DB.Ping})
	}
	if c.Cache.Enabled() {
		checks = append(checks, handler.HealthCheck{Name: "cache", Check: c.Cache.Ping})
	}

	routes.NewRegistry(routes.Handlers{
		Health:          handler.NewHealthHandler(checks...),
		Auth:            handler.NewAuthHandler(c.Auth, v),
		Skills:          handler.NewSkillHandler(c.Skills, v),
		CandidateSkills: handler.NewCandidateSkillHandler(c.CandidateSkills, v),
		Jobs:            handler.NewJobsHandler(c.Jobs, v),
		Matches:         handler.NewMatchHandler(c.Matching),
		WS:              ws.NewHandler(c.Hub, c.Log.Named("ws"), c.Config.App.WSAllowedOrigins...),
	}, middleware.NewAuthMiddleware(c.JWT)).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
