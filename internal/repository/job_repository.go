package repository

import (
	"context"
	"fmt"
	"time"

	"skill-match/internal/database"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
)

type JobRepository interface {
	ListActive(ctx context.Context) ([]job.Job, error)
	GetByID(ctx context.Context, id string) (job.Job, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Deactivate(ctx context.Context, id string) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const (
	jobColumns = `id::text, COALESCE(employer_id::text, ''), title, company, location, description,
		employment_type, experience_level, salary_min::float8, salary_max::float8, salary_currency,
		active, created_at, updated_at`

	tableRequired  = "job_required_skills"
	tablePreferred = "job_preferred_skills"
)

func scanJob(row database.Row) (job.Job, error) {
	var (
		j                    job.Job
		empType, expLevel    string
		salaryMin, salaryMax *float64
		currency             *string
	)
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.Description,
		&empType, &expLevel, &salaryMin, &salaryMax, &currency,
		&j.Active, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.EmploymentType = job.EmploymentType(empType)
	j.ExperienceLevel = job.ExperienceLevel(expLevel)
	if salaryMin != nil && salaryMax != nil {
		j.SalaryRange = &job.SalaryRange{Min: *salaryMin, Max: *salaryMax}
		if currency != nil {
			j.SalaryRange.Currency = *currency
		}
	}
	return j, nil
}

// ListActive returns every active job, newest first, with both skill lists
// in their stored order. Ranking relies on this order for ties.
func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE active ORDER BY created_at DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out))
	for _, j := range out {
		ids = append(ids, j.ID)
	}
	required, err := loadSkills(ctx, r.db, tableRequired, ids)
	if err != nil {
		return nil, err
	}
	preferred, err := loadSkills(ctx, r.db, tablePreferred, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RequiredSkills = required[out[i].ID]
		out[i].PreferredSkills = preferred[out[i].ID]
	}
	return job.NormalizeAll(out), nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	return getJob(ctx, r.db, id)
}

func getJob(ctx context.Context, q querier, id string) (job.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1::uuid`, id))
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("get job: %w", err)
	}

	required, err := loadSkills(ctx, q, tableRequired, []string{id})
	if err != nil {
		return job.Job{}, err
	}
	preferred, err := loadSkills(ctx, q, tablePreferred, []string{id})
	if err != nil {
		return job.Job{}, err
	}
	j.RequiredSkills = required[id]
	j.PreferredSkills = preferred[id]
	return j.Normalize(), nil
}

func loadSkills(ctx context.Context, q querier, table string, jobIDs []string) (map[string][]skill.Skill, error) {
	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT js.job_id::text, s.id::text, s.name
		 FROM %s js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = ANY($1::uuid[])
		 ORDER BY js.job_id, js.position ASC`, table),
		jobIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string][]skill.Skill, len(jobIDs))
	for rows.Next() {
		var jobID string
		var s skill.Skill
		if err := rows.Scan(&jobID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	j.Active = true

	var created job.Job
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		lo, hi, cur := salaryArgs(j.SalaryRange)
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, employer_id, title, company, location, description, employment_type,
			                   experience_level, salary_min, salary_max, salary_currency, active, created_at, updated_at)
			 VALUES ($1::uuid, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`,
			j.ID, j.EmployerID, j.Title, j.Company, j.Location, j.Description, string(j.EmploymentType),
			string(j.ExperienceLevel), lo, hi, cur, j.Active, now,
		)
		if err != nil {
			return fmt.Errorf("insert job: %w", err)
		}
		if err := replaceSkills(ctx, tx, j.ID, j.RequiredSkills, j.PreferredSkills); err != nil {
			return err
		}
		created, err = getJob(ctx, tx, j.ID)
		return err
	})
	if err != nil {
		return job.Job{}, err
	}
	return created, nil
}

// Update rewrites the descriptive fields and both skill lists. EmployerID,
// Active and CreatedAt are not touched.
func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	if _, err := uuid.Parse(j.ID); err != nil {
		return job.Job{}, ErrJobNotFound
	}

	var updated job.Job
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		lo, hi, cur := salaryArgs(j.SalaryRange)
		n, err := tx.Exec(ctx,
			`UPDATE jobs
			 SET title = $2, company = $3, location = $4, description = $5, employment_type = $6,
			     experience_level = $7, salary_min = $8, salary_max = $9, salary_currency = $10, updated_at = now()
			 WHERE id = $1::uuid`,
			j.ID, j.Title, j.Company, j.Location, j.Description, string(j.EmploymentType),
			string(j.ExperienceLevel), lo, hi, cur,
		)
		if err != nil {
			return fmt.Errorf("update job: %w", err)
		}
		if n == 0 {
			return ErrJobNotFound
		}
		if err := replaceSkills(ctx, tx, j.ID, j.RequiredSkills, j.PreferredSkills); err != nil {
			return err
		}
		updated, err = getJob(ctx, tx, j.ID)
		return err
	})
	if err != nil {
		return job.Job{}, err
	}
	return updated, nil
}

func (r *PostgresJobRepository) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrJobNotFound
	}
	n, err := r.db.Exec(ctx, `UPDATE jobs SET active = FALSE, updated_at = now() WHERE id = $1::uuid`, id)
	if err != nil {
		return fmt.Errorf("deactivate job: %w", err)
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func replaceSkills(ctx context.Context, tx database.Tx, jobID string, required, preferred []skill.Skill) error {
	for _, table := range []string{tableRequired, tablePreferred} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE job_id = $1::uuid`, table), jobID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := linkSkills(ctx, tx, tableRequired, jobID, required); err != nil {
		return err
	}
	return linkSkills(ctx, tx, tablePreferred, jobID, preferred)
}

// linkSkills resolves names against the catalog. A name repeated within one
// list (after folding) is stored once, at its first position.
func linkSkills(ctx context.Context, tx database.Tx, table, jobID string, skills []skill.Skill) error {
	seen := make(map[string]struct{}, len(skills))
	pos := 0
	for _, s := range skills {
		key := matching.FoldSkill(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		cs, err := resolveSkill(ctx, tx, s.Name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (job_id, skill_id, position) VALUES ($1::uuid, $2::uuid, $3)`, table),
			jobID, cs.ID, pos,
		); err != nil {
			return fmt.Errorf("link %s: %w", table, err)
		}
		pos++
	}
	return nil
}

func salaryArgs(r *job.SalaryRange) (*float64, *float64, *string) {
	if r == nil {
		return nil, nil, nil
	}
	lo, hi, cur := r.Min, r.Max, r.Currency
	return &lo, &hi, &cur
}
