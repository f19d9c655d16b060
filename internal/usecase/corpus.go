package usecase

import (
	"context"
	"time"

	"skill-match/internal/domain/job"
	"skill-match/internal/repository"

	"go.uber.org/zap"
)

const (
	corpusCacheKey  = "jobs:corpus"
	catalogCacheKey = "skills:catalog"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// JobCorpus is the read path for the set of active jobs the engine runs
// over. Cache failures fall through to the repository.
type JobCorpus struct {
	repo  repository.JobRepository
	cache Cache
	log   *zap.Logger
}

func NewJobCorpus(repo repository.JobRepository, cache Cache, log *zap.Logger) *JobCorpus {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobCorpus{repo: repo, cache: cache, log: log}
}

func (c *JobCorpus) Load(ctx context.Context) ([]job.Job, error) {
	if c.cache != nil {
		var cached []job.Job
		hit, err := c.cache.GetJSON(ctx, corpusCacheKey, &cached)
		if err != nil {
			c.log.Warn("corpus cache read failed", zap.Error(err))
		}
		if hit {
			return job.NormalizeAll(cached), nil
		}
	}

	jobs, err := c.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	jobs = job.NormalizeAll(jobs)

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, corpusCacheKey, jobs, 0); err != nil {
			c.log.Warn("corpus cache write failed", zap.Error(err))
		}
	}
	return jobs, nil
}

func (c *JobCorpus) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, corpusCacheKey); err != nil {
		c.log.Warn("corpus cache invalidate failed", zap.Error(err))
	}
}
