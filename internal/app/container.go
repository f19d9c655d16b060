package app

import (
	"context"
	"errors"
	"time"

	"skill-match/internal/config"
	"skill-match/internal/database"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/internal/infrastructure/cache"
	"skill-match/internal/pkg/jwt"
	"skill-match/internal/repository"
	"skill-match/internal/usecase"
	"skill-match/internal/ws"

	"go.uber.org/zap"
)

// Container owns the long lived dependencies of the server process.
type Container struct {
	Config config.Config
	Log    *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth            usecase.AuthUsecase
	Skills          usecase.SkillUsecase
	CandidateSkills usecase.CandidateSkillUsecase
	Jobs            usecase.JobUsecase
	Matching        usecase.MatchingUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Database.Enabled() {
		return nil, errors.New("database is not configured: set DB_HOST and DB_NAME")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return Assemble(ctx, cfg, log, db), nil
}

// Assemble wires the container around an open database. The cache and hub
// are created here; an unreachable Redis leaves the cache in bypass mode.
func Assemble(ctx context.Context, cfg config.Config, log *zap.Logger, db database.DB) *Container {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Cache:  cache.NewRedis(ctx, cfg.Redis, log.Named("cache")),
		Hub:    ws.NewHub(log.Named("ws")),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}
	c.wireUsecases()
	return c
}

func (c *Container) wireUsecases() {
	users := repository.NewPostgresUserRepository(c.DB)
	skills := repository.NewPostgresSkillRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	candidates := repository.NewPostgresCandidateSkillRepository(c.DB)

	corpus := usecase.NewJobCorpus(jobs, c.Cache, c.Log.Named("corpus"))

	c.Auth = usecase.NewAuthUsecase(users, c.JWT, c.Log.Named("auth"))
	c.Skills = usecase.NewSkillUsecase(skills, c.Cache, c.Log.Named("skills"))
	c.CandidateSkills = usecase.NewCandidateSkillUsecase(candidates, c.Log.Named("candidate_skills"))
	c.Jobs = usecase.NewJobUsecase(jobs, corpus, candidates, ws.NewNotifier(c.Hub), c.Log.Named("jobs"))
	c.Matching = usecase.NewMatchingUsecase(jobs, corpus, candidates, c.Config.Engine, c.Log.Named("matching"))
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
