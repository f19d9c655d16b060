package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidateSkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	Add(ctx context.Context, userID uuid.UUID, name, level string) (skill.Skill, error)
	UpdateLevel(ctx context.Context, userID uuid.UUID, id, level string) (skill.Skill, error)
	Remove(ctx context.Context, userID uuid.UUID, id string) error
}

type CandidateSkills struct {
	repo repository.CandidateSkillRepository
	log  *zap.Logger
}

func NewCandidateSkillUsecase(repo repository.CandidateSkillRepository, log *zap.Logger) *CandidateSkills {
	if log == nil {
		log = zap.NewNop()
	}
	return &CandidateSkills{repo: repo, log: log}
}

func (u *CandidateSkills) List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Error("list candidate skills", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

// Add attaches a skill by name. Adding a name the candidate already holds,
// in any casing, is a conflict.
func (u *CandidateSkills) Add(ctx context.Context, userID uuid.UUID, name, level string) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	lvl, ok := skill.ParseLevel(level)
	if !ok {
		return skill.Skill{}, fmt.Errorf("%w: unknown level %q", ErrInvalidInput, level)
	}

	added, err := u.repo.Add(ctx, userID, name, lvl)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateSkillExists) {
			return skill.Skill{}, ErrSkillAlreadyExists
		}
		u.log.Error("add candidate skill", zap.String("name", name), zap.Error(err))
		return skill.Skill{}, ErrInternal
	}
	return added, nil
}

func (u *CandidateSkills) UpdateLevel(ctx context.Context, userID uuid.UUID, id, level string) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	lvl, ok := skill.ParseLevel(level)
	if !ok {
		return skill.Skill{}, fmt.Errorf("%w: unknown level %q", ErrInvalidInput, level)
	}

	updated, err := u.repo.UpdateLevel(ctx, userID, id, lvl)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		u.log.Error("update candidate skill", zap.String("id", id), zap.Error(err))
		return skill.Skill{}, ErrInternal
	}
	return updated, nil
}

func (u *CandidateSkills) Remove(ctx context.Context, userID uuid.UUID, id string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCandidateSkillNotFound) {
			return ErrSkillNotFound
		}
		u.log.Error("remove candidate skill", zap.String("id", id), zap.Error(err))
		return ErrInternal
	}
	return nil
}
