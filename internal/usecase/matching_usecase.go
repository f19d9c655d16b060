package usecase

import (
	"context"
	"errors"
	"fmt"

	"skill-match/internal/config"
	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HighMatchThreshold is the percentage from which a job counts as a strong
// match on the dashboard.
const HighMatchThreshold = 70

type MatchingUsecase interface {
	MatchJob(ctx context.Context, userID uuid.UUID, jobID string) (matching.MatchResult, error)
	RankJobs(ctx context.Context, userID uuid.UUID, minScore int) ([]matching.RankedJob, error)
	RecommendSkills(ctx context.Context, userID uuid.UUID, limit int) ([]skill.Skill, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error)
}

type Dashboard struct {
	SkillCount        int
	TotalJobs         int
	HighMatches       int
	Matches           []matching.RankedJob
	RecommendedSkills []skill.Skill
}

type Matching struct {
	jobs       repository.JobRepository
	corpus     *JobCorpus
	candidates repository.CandidateSkillRepository
	engine     config.EngineConfig
	log        *zap.Logger
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	corpus *JobCorpus,
	candidates repository.CandidateSkillRepository,
	engine config.EngineConfig,
	log *zap.Logger,
) *Matching {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matching{jobs: jobs, corpus: corpus, candidates: candidates, engine: engine, log: log}
}

// profile loads the caller's skills and returns a private copy, so edits
// racing with a computation never change what it sees.
func (u *Matching) profile(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	if userID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}
	skills, err := u.candidates.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Error("load candidate skills", zap.Stringer("user_id", userID), zap.Error(err))
		return candidate.Profile{}, ErrInternal
	}
	p := candidate.Profile{UserID: userID.String(), Skills: skills}
	return p.Snapshot(), nil
}

func (u *Matching) loadCorpus(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.corpus.Load(ctx)
	if err != nil {
		u.log.Error("load job corpus", zap.Error(err))
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Matching) parallel(n int) bool {
	return u.engine.ParallelThreshold > 0 && n > u.engine.ParallelThreshold && u.engine.Workers > 1
}

func (u *Matching) rank(ctx context.Context, c candidate.Profile, jobs []job.Job) ([]matching.RankedJob, error) {
	if !u.parallel(len(jobs)) {
		return matching.Rank(c, jobs), nil
	}
	ranked, err := matching.RankConcurrent(ctx, u.engine.Workers, c, jobs)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	return ranked, nil
}

func (u *Matching) recommend(ctx context.Context, c candidate.Profile, jobs []job.Job, limit int) ([]skill.Skill, error) {
	if !u.parallel(len(jobs)) {
		return matching.Recommend(c, jobs, limit), nil
	}
	recs, err := matching.RecommendConcurrent(ctx, u.engine.Workers, c, jobs, limit)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	return recs, nil
}

func (u *Matching) MatchJob(ctx context.Context, userID uuid.UUID, jobID string) (matching.MatchResult, error) {
	c, err := u.profile(ctx, userID)
	if err != nil {
		return matching.MatchResult{}, err
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.MatchResult{}, ErrJobNotFound
		}
		u.log.Error("load job", zap.String("job_id", jobID), zap.Error(err))
		return matching.MatchResult{}, ErrInternal
	}
	if !j.Active {
		return matching.MatchResult{}, ErrJobNotFound
	}

	return matching.Score(c, j.Normalize()), nil
}

// RankJobs ranks the active corpus for the caller and keeps the jobs scoring
// at least minScore. Filtering happens after ranking so order is unchanged.
func (u *Matching) RankJobs(ctx context.Context, userID uuid.UUID, minScore int) ([]matching.RankedJob, error) {
	if minScore < 0 || minScore > 100 {
		return nil, fmt.Errorf("%w: min_score must be between 0 and 100", ErrInvalidInput)
	}
	c, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := u.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := u.rank(ctx, c, jobs)
	if err != nil {
		return nil, u.engineError(err)
	}
	if minScore == 0 {
		return ranked, nil
	}

	out := make([]matching.RankedJob, 0, len(ranked))
	for _, r := range ranked {
		if r.Result.MatchPercentage < minScore {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (u *Matching) RecommendSkills(ctx context.Context, userID uuid.UUID, limit int) ([]skill.Skill, error) {
	c, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := u.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := u.recommend(ctx, c, jobs, limit)
	if err != nil {
		return nil, u.engineError(err)
	}
	return recs, nil
}

// Dashboard computes everything the job seeker landing page shows from a
// single snapshot of the profile and the corpus.
func (u *Matching) Dashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	c, err := u.profile(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}
	jobs, err := u.loadCorpus(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	ranked, err := u.rank(ctx, c, jobs)
	if err != nil {
		return Dashboard{}, u.engineError(err)
	}
	recs, err := u.recommend(ctx, c, jobs, matching.DefaultRecommendationLimit)
	if err != nil {
		return Dashboard{}, u.engineError(err)
	}

	high := 0
	for _, r := range ranked {
		if r.Result.MatchPercentage >= HighMatchThreshold {
			high++
		}
	}

	return Dashboard{
		SkillCount:        len(c.Skills),
		TotalJobs:         len(jobs),
		HighMatches:       high,
		Matches:           ranked,
		RecommendedSkills: recs,
	}, nil
}

func (u *Matching) engineError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	u.log.Error("matching engine", zap.Error(err))
	return ErrInternal
}
