package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-match/internal/domain/job"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"go.uber.org/zap"
)

type JobUsecase interface {
	List(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id string) (job.Job, error)
	Create(ctx context.Context, actor Actor, in JobInput) (job.Job, error)
	Update(ctx context.Context, actor Actor, id string, in JobInput) (job.Job, error)
	Deactivate(ctx context.Context, actor Actor, id string) error
	MatchSummary(ctx context.Context, actor Actor, id string) (MatchSummary, error)
}

// JobsNotifier is told about every change to the active corpus.
type JobsNotifier interface {
	NotifyJobsUpdated(action, jobID string)
}

type JobInput struct {
	Title           string
	Company         string
	Location        string
	Description     string
	RequiredSkills  []string
	PreferredSkills []string
	EmploymentType  job.EmploymentType
	ExperienceLevel job.ExperienceLevel
	SalaryRange     *job.SalaryRange
}

type MatchSummary struct {
	JobID                  string
	Candidates             int
	AverageMatchPercentage int
	HighMatches            int
}

type Jobs struct {
	repo       repository.JobRepository
	corpus     *JobCorpus
	candidates repository.CandidateSkillRepository
	notifier   JobsNotifier
	log        *zap.Logger
}

func NewJobUsecase(
	repo repository.JobRepository,
	corpus *JobCorpus,
	candidates repository.CandidateSkillRepository,
	notifier JobsNotifier,
	log *zap.Logger,
) *Jobs {
	if log == nil {
		log = zap.NewNop()
	}
	return &Jobs{repo: repo, corpus: corpus, candidates: candidates, notifier: notifier, log: log}
}

func (u *Jobs) List(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.corpus.Load(ctx)
	if err != nil {
		u.log.Error("list jobs", zap.Error(err))
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) Get(ctx context.Context, id string) (job.Job, error) {
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, u.repoError("get job", id, err)
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, actor Actor, in JobInput) (job.Job, error) {
	if !actor.IsEmployer() {
		return job.Job{}, ErrForbidden
	}
	j, err := in.toJob()
	if err != nil {
		return job.Job{}, err
	}
	j.EmployerID = actor.UserID.String()

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		u.log.Error("create job", zap.Error(err))
		return job.Job{}, ErrInternal
	}
	u.changed(ctx, "created", created.ID)
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, actor Actor, id string, in JobInput) (job.Job, error) {
	current, err := u.owned(ctx, actor, id)
	if err != nil {
		return job.Job{}, err
	}
	j, err := in.toJob()
	if err != nil {
		return job.Job{}, err
	}
	j.ID = current.ID
	j.EmployerID = current.EmployerID

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return job.Job{}, u.repoError("update job", id, err)
	}
	u.changed(ctx, "updated", updated.ID)
	return updated, nil
}

// Deactivate hides the job from the corpus. The row stays so existing
// references keep resolving.
func (u *Jobs) Deactivate(ctx context.Context, actor Actor, id string) error {
	current, err := u.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if !current.Active {
		return nil
	}
	if err := u.repo.Deactivate(ctx, current.ID); err != nil {
		return u.repoError("deactivate job", id, err)
	}
	u.changed(ctx, "deactivated", current.ID)
	return nil
}

// MatchSummary scores the job against every candidate holding at least one
// skill. The average is rounded half up; with no candidates it is zero.
func (u *Jobs) MatchSummary(ctx context.Context, actor Actor, id string) (MatchSummary, error) {
	j, err := u.owned(ctx, actor, id)
	if err != nil {
		return MatchSummary{}, err
	}
	profiles, err := u.candidates.ListProfiles(ctx)
	if err != nil {
		u.log.Error("list candidate profiles", zap.Error(err))
		return MatchSummary{}, ErrInternal
	}

	out := MatchSummary{JobID: j.ID}
	total := 0
	for _, p := range profiles {
		if len(p.Skills) == 0 {
			continue
		}
		res := matching.Score(p.Snapshot(), j.Normalize())
		total += res.MatchPercentage
		out.Candidates++
		if res.MatchPercentage >= HighMatchThreshold {
			out.HighMatches++
		}
	}
	if out.Candidates > 0 {
		out.AverageMatchPercentage = (2*total + out.Candidates) / (2 * out.Candidates)
	}
	return out, nil
}

func (u *Jobs) owned(ctx context.Context, actor Actor, id string) (job.Job, error) {
	if !actor.IsEmployer() {
		return job.Job{}, ErrForbidden
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, u.repoError("get job", id, err)
	}
	if j.EmployerID != actor.UserID.String() {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (u *Jobs) changed(ctx context.Context, action, id string) {
	u.corpus.Invalidate(ctx)
	if u.notifier != nil {
		u.notifier.NotifyJobsUpdated(action, id)
	}
	u.log.Info("job changed", zap.String("action", action), zap.String("job_id", id))
}

func (u *Jobs) repoError(op, id string, err error) error {
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	u.log.Error(op, zap.String("job_id", id), zap.Error(err))
	return ErrInternal
}

func (in JobInput) toJob() (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	if title == "" || company == "" {
		return job.Job{}, fmt.Errorf("%w: title and company are required", ErrInvalidInput)
	}
	if in.EmploymentType != "" && !in.EmploymentType.Valid() {
		return job.Job{}, fmt.Errorf("%w: unknown employment type %q", ErrInvalidInput, in.EmploymentType)
	}
	if in.ExperienceLevel != "" && !in.ExperienceLevel.Valid() {
		return job.Job{}, fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, in.ExperienceLevel)
	}
	if r := in.SalaryRange; r != nil && (r.Min < 0 || r.Max < r.Min) {
		return job.Job{}, fmt.Errorf("%w: salary range must satisfy 0 <= min <= max", ErrInvalidInput)
	}

	return job.Job{
		Title:           title,
		Company:         company,
		Location:        strings.TrimSpace(in.Location),
		Description:     strings.TrimSpace(in.Description),
		RequiredSkills:  namedSkills(in.RequiredSkills),
		PreferredSkills: namedSkills(in.PreferredSkills),
		EmploymentType:  in.EmploymentType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryRange:     in.SalaryRange,
	}, nil
}

func namedSkills(names []string) []skill.Skill {
	out := make([]skill.Skill, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		out = append(out, skill.Skill{Name: n})
	}
	return out
}
