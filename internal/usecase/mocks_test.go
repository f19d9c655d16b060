package usecase

import (
	"context"
	"time"

	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(job.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	args := m.Called(ctx, j)
	return args.Get(0).(job.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	args := m.Called(ctx, j)
	return args.Get(0).(job.Job), args.Error(1)
}

func (m *MockJobRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateSkillRepository struct {
	mock.Mock
}

func (m *MockCandidateSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]skill.Skill), args.Error(1)
}

func (m *MockCandidateSkillRepository) Add(ctx context.Context, userID uuid.UUID, name string, level *skill.ProficiencyLevel) (skill.Skill, error) {
	args := m.Called(ctx, userID, name, level)
	return args.Get(0).(skill.Skill), args.Error(1)
}

func (m *MockCandidateSkillRepository) UpdateLevel(ctx context.Context, userID uuid.UUID, id string, level *skill.ProficiencyLevel) (skill.Skill, error) {
	args := m.Called(ctx, userID, id, level)
	return args.Get(0).(skill.Skill), args.Error(1)
}

func (m *MockCandidateSkillRepository) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockCandidateSkillRepository) ListProfiles(ctx context.Context) ([]candidate.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]candidate.Profile), args.Error(1)
}

type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) List(ctx context.Context) ([]skill.CatalogSkill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]skill.CatalogSkill), args.Error(1)
}

func (m *MockSkillRepository) FindByName(ctx context.Context, name string) (skill.CatalogSkill, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(skill.CatalogSkill), args.Error(1)
}

func (m *MockSkillRepository) Create(ctx context.Context, name, category string) (skill.CatalogSkill, error) {
	args := m.Called(ctx, name, category)
	return args.Get(0).(skill.CatalogSkill), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyJobsUpdated(action, jobID string) {
	m.Called(action, jobID)
}

// memCache is an in-process Cache with a switch to simulate an outage.
type memCache struct {
	items map[string]any
	fail  error
	sets  int
}

func newMemCache() *memCache { return &memCache{items: map[string]any{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.fail != nil {
		return false, c.fail
	}
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	switch dst := out.(type) {
	case *[]job.Job:
		*dst = v.([]job.Job)
	case *[]skill.CatalogSkill:
		*dst = v.([]skill.CatalogSkill)
	default:
		return false, nil
	}
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.fail != nil {
		return c.fail
	}
	c.sets++
	c.items[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	if c.fail != nil {
		return c.fail
	}
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}
