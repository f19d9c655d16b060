package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"skill-match/internal/config"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sk(id, name string) skill.Skill { return skill.Skill{ID: id, Name: name} }

func demoCorpus() []job.Job {
	return []job.Job{
		{
			ID: "job-1", Active: true,
			RequiredSkills:  []skill.Skill{sk("1", "JavaScript"), sk("2", "React"), sk("4", "HTML"), sk("5", "CSS")},
			PreferredSkills: []skill.Skill{sk("6", "TypeScript"), sk("7", "Redux")},
		},
		{
			ID: "job-2", Active: true,
			RequiredSkills: []skill.Skill{sk("1", "JavaScript"), sk("2", "React"), sk("3", "Node.js"), sk("8", "Express")},
		},
		{
			ID: "job-3", Active: true,
			RequiredSkills: []skill.Skill{sk("1", "JavaScript"), sk("2", "React"), sk("7", "Redux"), sk("6", "TypeScript")},
		},
	}
}

func seekerSkills() []skill.Skill {
	return []skill.Skill{sk("a", "JavaScript"), sk("b", "React"), sk("c", "Node.js")}
}

func ids(items []matching.RankedJob) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Job.ID)
	}
	return out
}

type matchingFixture struct {
	jobs       *MockJobRepository
	candidates *MockCandidateSkillRepository
	cache      *memCache
	uc         *Matching
}

func newMatchingFixture(engine config.EngineConfig) matchingFixture {
	f := matchingFixture{
		jobs:       new(MockJobRepository),
		candidates: new(MockCandidateSkillRepository),
		cache:      newMemCache(),
	}
	corpus := NewJobCorpus(f.jobs, f.cache, nil)
	f.uc = NewMatchingUsecase(f.jobs, corpus, f.candidates, engine, nil)
	return f
}

func TestMatching_MatchJob(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("scores the job", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("GetByID", ctx, "job-1").Return(demoCorpus()[0], nil)

		res, err := f.uc.MatchJob(ctx, userID, "job-1")
		require.NoError(t, err)
		assert.Equal(t, 50, res.MatchPercentage)
		assert.Equal(t, []string{"1", "2"}, res.MatchedSkillIDs)
		assert.Equal(t, []string{"4", "5"}, res.MissingSkillIDs)
		f.jobs.AssertExpectations(t)
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("GetByID", ctx, "nope").Return(job.Job{}, repository.ErrJobNotFound)

		_, err := f.uc.MatchJob(ctx, userID, "nope")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("inactive job is not found", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		closed := demoCorpus()[0]
		closed.Active = false
		f.jobs.On("GetByID", ctx, "job-1").Return(closed, nil)

		_, err := f.uc.MatchJob(ctx, userID, "job-1")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("empty profile still scores", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return([]skill.Skill{}, nil)
		f.jobs.On("GetByID", ctx, "job-2").Return(demoCorpus()[1], nil)

		res, err := f.uc.MatchJob(ctx, userID, "job-2")
		require.NoError(t, err)
		assert.Equal(t, 0, res.MatchPercentage)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		_, err := f.uc.MatchJob(ctx, uuid.Nil, "job-1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(nil, errors.New("db down"))
		_, err := f.uc.MatchJob(ctx, userID, "job-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestMatching_RankJobs(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("orders by score and keeps ties in corpus order", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("ListActive", ctx).Return(demoCorpus(), nil).Once()

		ranked, err := f.uc.RankJobs(ctx, userID, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"job-2", "job-1", "job-3"}, ids(ranked))

		// second call is served from the cache
		ranked, err = f.uc.RankJobs(ctx, userID, 0)
		require.NoError(t, err)
		assert.Len(t, ranked, 3)
		f.jobs.AssertNumberOfCalls(t, "ListActive", 1)
	})

	t.Run("min score filter", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("ListActive", ctx).Return(demoCorpus(), nil)

		ranked, err := f.uc.RankJobs(ctx, userID, 70)
		require.NoError(t, err)
		assert.Equal(t, []string{"job-2"}, ids(ranked))

		ranked, err = f.uc.RankJobs(ctx, userID, 100)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("rejects out of range min score", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		_, err := f.uc.RankJobs(ctx, userID, 101)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = f.uc.RankJobs(ctx, userID, -1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("cache outage falls through to repository", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.cache.fail = errors.New("redis down")
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("ListActive", ctx).Return(demoCorpus(), nil)

		ranked, err := f.uc.RankJobs(ctx, userID, 0)
		require.NoError(t, err)
		assert.Len(t, ranked, 3)
	})

	t.Run("corpus failure is internal", func(t *testing.T) {
		f := newMatchingFixture(config.EngineConfig{Workers: 1})
		f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
		f.jobs.On("ListActive", ctx).Return(nil, errors.New("db down"))

		_, err := f.uc.RankJobs(ctx, userID, 0)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestMatching_RecommendSkills(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	f := newMatchingFixture(config.EngineConfig{Workers: 1})
	f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
	f.jobs.On("ListActive", ctx).Return(demoCorpus(), nil)

	recs, err := f.uc.RecommendSkills(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "TypeScript", recs[0].Name)
	assert.Equal(t, "Redux", recs[1].Name)

	recs, err = f.uc.RecommendSkills(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, recs, matching.DefaultRecommendationLimit)
}

func TestMatching_Dashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	f := newMatchingFixture(config.EngineConfig{Workers: 1})
	f.candidates.On("FindByUserID", ctx, userID).Return(seekerSkills(), nil)
	f.jobs.On("ListActive", ctx).Return(demoCorpus(), nil)

	d, err := f.uc.Dashboard(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, d.SkillCount)
	assert.Equal(t, 3, d.TotalJobs)
	assert.Equal(t, 1, d.HighMatches)
	assert.Equal(t, []string{"job-2", "job-1", "job-3"}, ids(d.Matches))
	names := []string{}
	for _, s := range d.RecommendedSkills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"TypeScript", "Redux", "HTML", "CSS", "Express"}, names)
}

func TestMatching_ParallelPathMatchesSequential(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	corpus := make([]job.Job, 0, 60)
	for i := 0; i < 60; i++ {
		corpus = append(corpus, job.Job{
			ID:     fmt.Sprintf("job-%02d", i),
			Active: true,
			RequiredSkills: []skill.Skill{
				sk("js", "JavaScript"),
				sk(fmt.Sprintf("x%d", i%7), fmt.Sprintf("Skill-%d", i%7)),
			},
			PreferredSkills: []skill.Skill{sk(fmt.Sprintf("p%d", i%5), fmt.Sprintf("Pref-%d", i%5))},
		})
	}

	seq := newMatchingFixture(config.EngineConfig{Workers: 1, ParallelThreshold: 10})
	par := newMatchingFixture(config.EngineConfig{Workers: 4, ParallelThreshold: 10})
	for _, f := range []matchingFixture{seq, par} {
		f.candidates.On("FindByUserID", ctx, userID).Return([]skill.Skill{sk("a", "javascript"), sk("b", "Skill-3")}, nil)
		f.jobs.On("ListActive", ctx).Return(corpus, nil)
	}
	assert.False(t, seq.uc.parallel(len(corpus)))
	assert.True(t, par.uc.parallel(len(corpus)))

	a, err := seq.uc.Dashboard(ctx, userID)
	require.NoError(t, err)
	b, err := par.uc.Dashboard(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	par.candidates.AssertCalled(t, "FindByUserID", ctx, mock.Anything)
}
