package seeder

import (
	"context"
	"fmt"
	"time"

	"skill-match/internal/database"
	"skill-match/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "demo-password"

type demoUser struct {
	ID     string
	Email  string
	Name   string
	Role   user.Role
	Skills []string
}

type demoJob struct {
	ID              string
	EmployerID      string
	Title           string
	Company         string
	Location        string
	Description     string
	Required        []string
	Preferred       []string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       *float64
	SalaryMax       *float64
	Currency        *string
	Age             time.Duration
}

func ptr[T any](v T) *T { return &v }

var demoUsers = []demoUser{
	{ID: "00000000-0000-4000-8000-000000000101", Email: "techcorp@demo.local", Name: "TechCorp Hiring", Role: user.RoleEmployer},
	{ID: "00000000-0000-4000-8000-000000000102", Email: "innovatetech@demo.local", Name: "InnovateTech Hiring", Role: user.RoleEmployer},
	{ID: "00000000-0000-4000-8000-000000000103", Email: "growthstartup@demo.local", Name: "GrowthStartup Hiring", Role: user.RoleEmployer},
	{
		ID:     "00000000-0000-4000-8000-000000000201",
		Email:  "seeker@demo.local",
		Name:   "Demo Seeker",
		Role:   user.RoleJobSeeker,
		Skills: []string{"JavaScript", "React", "Node.js"},
	},
}

var demoJobs = []demoJob{
	{
		ID:              "00000000-0000-4000-8000-000000000301",
		EmployerID:      "00000000-0000-4000-8000-000000000101",
		Title:           "Frontend Developer",
		Company:         "TechCorp",
		Location:        "San Francisco, CA",
		Description:     "We are looking for a Frontend Developer proficient in React and modern JavaScript.",
		Required:        []string{"JavaScript", "React", "HTML", "CSS"},
		Preferred:       []string{"TypeScript", "Redux"},
		EmploymentType:  "full-time",
		ExperienceLevel: "mid",
		SalaryMin:       ptr(90000.0),
		SalaryMax:       ptr(120000.0),
		Currency:        ptr("USD"),
		Age:             48 * time.Hour,
	},
	{
		ID:              "00000000-0000-4000-8000-000000000302",
		EmployerID:      "00000000-0000-4000-8000-000000000102",
		Title:           "Full Stack Developer",
		Company:         "InnovateTech",
		Location:        "Remote",
		Description:     "Join our team as a Full Stack Developer working with React and Node.js.",
		Required:        []string{"JavaScript", "React", "Node.js", "Express"},
		EmploymentType:  "full-time",
		ExperienceLevel: "mid",
		Age:             24 * time.Hour,
	},
	{
		ID:              "00000000-0000-4000-8000-000000000303",
		EmployerID:      "00000000-0000-4000-8000-000000000103",
		Title:           "Senior React Developer",
		Company:         "GrowthStartup",
		Location:        "New York, NY",
		Description:     "Looking for an experienced React developer to lead our frontend team.",
		Required:        []string{"JavaScript", "React", "Redux", "TypeScript"},
		EmploymentType:  "full-time",
		ExperienceLevel: "senior",
		SalaryMin:       ptr(120000.0),
		SalaryMax:       ptr(160000.0),
		Currency:        ptr("USD"),
		Age:             120 * time.Hour,
	},
}

// DemoSeeder loads a small corpus: three employers with one posting each and
// a job seeker holding JavaScript, React and Node.js. Re-running it is a no-op.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "employer_id", "title", "company", "active", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "name", "role", "password_hash"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range demoUsers {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO users (id, email, name, role, password_hash) VALUES ($1::uuid, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Email, u.Name, string(u.Role), string(hash),
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, err)
		}
		for _, name := range u.Skills {
			skillID, err := upsertSkill(ctx, tx, name, "")
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO candidate_skills (id, user_id, skill_id, level) VALUES (gen_random_uuid(), $1::uuid, $2::uuid, 'intermediate')
				 ON CONFLICT (user_id, skill_id) DO NOTHING`,
				u.ID, skillID,
			); err != nil {
				return fmt.Errorf("insert candidate skill %s: %w", name, err)
			}
		}
	}

	now := time.Now().UTC()
	for _, j := range demoJobs {
		created := now.Add(-j.Age)
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, employer_id, title, company, location, description, employment_type, experience_level,
			                   salary_min, salary_max, salary_currency, active, created_at, updated_at)
			 VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, $12)
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, j.EmployerID, j.Title, j.Company, j.Location, j.Description, j.EmploymentType, j.ExperienceLevel,
			j.SalaryMin, j.SalaryMax, j.Currency, created,
		)
		if err != nil {
			return fmt.Errorf("insert job %s: %w", j.Title, err)
		}
		if affected == 0 {
			continue
		}
		if err := linkSkills(ctx, tx, "job_required_skills", j.ID, j.Required); err != nil {
			return err
		}
		if err := linkSkills(ctx, tx, "job_preferred_skills", j.ID, j.Preferred); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func linkSkills(ctx context.Context, tx database.Tx, table, jobID string, names []string) error {
	for pos, name := range names {
		skillID, err := upsertSkill(ctx, tx, name, "")
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			fmt.Sprintf(`INSERT INTO %s (job_id, skill_id, position) VALUES ($1::uuid, $2::uuid, $3) ON CONFLICT DO NOTHING`, table),
			jobID, skillID, pos,
		); err != nil {
			return fmt.Errorf("link %s %s: %w", table, name, err)
		}
	}
	return nil
}
