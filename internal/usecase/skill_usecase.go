package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"go.uber.org/zap"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.CatalogSkill, error)
	AddSkill(ctx context.Context, name, category string) (skill.CatalogSkill, error)
}

type Skill struct {
	repo  repository.SkillRepository
	cache Cache
	log   *zap.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, cache Cache, log *zap.Logger) *Skill {
	if log == nil {
		log = zap.NewNop()
	}
	return &Skill{repo: repo, cache: cache, log: log}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.CatalogSkill, error) {
	if u.cache != nil {
		var cached []skill.CatalogSkill
		if hit, err := u.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("list skills", zap.Error(err))
		return nil, ErrInternal
	}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, catalogCacheKey, items, 0); err != nil {
			u.log.Warn("skill catalog cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// AddSkill adds a catalog entry. Names are unique ignoring case and
// surrounding whitespace.
func (u *Skill) AddSkill(ctx context.Context, name, category string) (skill.CatalogSkill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.CatalogSkill{}, ErrInvalidInput
	}

	if _, err := u.repo.FindByName(ctx, name); err == nil {
		return skill.CatalogSkill{}, ErrSkillAlreadyExists
	} else if !errors.Is(err, repository.ErrSkillNotFound) {
		u.log.Error("find skill", zap.String("name", name), zap.Error(err))
		return skill.CatalogSkill{}, ErrInternal
	}

	created, err := u.repo.Create(ctx, name, category)
	if err != nil {
		if errors.Is(err, repository.ErrSkillExists) {
			return skill.CatalogSkill{}, ErrSkillAlreadyExists
		}
		u.log.Error("create skill", zap.String("name", name), zap.Error(err))
		return skill.CatalogSkill{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, catalogCacheKey); err != nil {
			u.log.Warn("skill catalog cache invalidate failed", zap.Error(err))
		}
	}
	return created, nil
}
