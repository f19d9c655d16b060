package repository

import (
	"context"
	"fmt"

	"skill-match/internal/database"
	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
)

type CandidateSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	Add(ctx context.Context, userID uuid.UUID, name string, level *skill.ProficiencyLevel) (skill.Skill, error)
	UpdateLevel(ctx context.Context, userID uuid.UUID, id string, level *skill.ProficiencyLevel) (skill.Skill, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	ListProfiles(ctx context.Context) ([]candidate.Profile, error)
}

// PostgresCandidateSkillRepository stores a candidate's skills as links into
// the catalog. The Skill.ID it hands out is the link id, which is what the
// update and delete operations take.
type PostgresCandidateSkillRepository struct {
	db database.DB
}

func NewPostgresCandidateSkillRepository(db database.DB) *PostgresCandidateSkillRepository {
	return &PostgresCandidateSkillRepository{db: db}
}

func scanCandidateSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	var level *string
	if err := row.Scan(&s.ID, &s.Name, &level); err != nil {
		return skill.Skill{}, err
	}
	if level != nil {
		lvl := skill.ProficiencyLevel(*level)
		s.Level = &lvl
	}
	return s, nil
}

func levelArg(level *skill.ProficiencyLevel) *string {
	if level == nil {
		return nil
	}
	s := string(*level)
	return &s
}

func (r *PostgresCandidateSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cs.id::text, s.name, cs.level
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.user_id = $1
		 ORDER BY cs.created_at ASC, cs.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list candidate skills: %w", err)
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanCandidateSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateSkillRepository) Add(ctx context.Context, userID uuid.UUID, name string, level *skill.ProficiencyLevel) (skill.Skill, error) {
	var added skill.Skill
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		cs, err := resolveSkill(ctx, tx, name)
		if err != nil {
			return err
		}
		var id string
		err = tx.QueryRow(ctx,
			`INSERT INTO candidate_skills (id, user_id, skill_id, level) VALUES (gen_random_uuid(), $1, $2::uuid, $3)
			 RETURNING id::text`,
			userID, cs.ID, levelArg(level),
		).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrCandidateSkillExists
			}
			return fmt.Errorf("add candidate skill: %w", err)
		}
		added = skill.Skill{ID: id, Name: cs.Name, Level: level}
		return nil
	})
	if err != nil {
		return skill.Skill{}, err
	}
	return added, nil
}

func (r *PostgresCandidateSkillRepository) UpdateLevel(ctx context.Context, userID uuid.UUID, id string, level *skill.ProficiencyLevel) (skill.Skill, error) {
	if _, err := uuid.Parse(id); err != nil {
		return skill.Skill{}, ErrCandidateSkillNotFound
	}
	s, err := scanCandidateSkill(r.db.QueryRow(ctx,
		`UPDATE candidate_skills cs SET level = $3
		 FROM skills s
		 WHERE cs.id = $1::uuid AND cs.user_id = $2 AND s.id = cs.skill_id
		 RETURNING cs.id::text, s.name, cs.level`,
		id, userID, levelArg(level),
	))
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, ErrCandidateSkillNotFound
		}
		return skill.Skill{}, fmt.Errorf("update candidate skill: %w", err)
	}
	return s, nil
}

func (r *PostgresCandidateSkillRepository) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrCandidateSkillNotFound
	}
	n, err := r.db.Exec(ctx, `DELETE FROM candidate_skills WHERE id = $1::uuid AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete candidate skill: %w", err)
	}
	if n == 0 {
		return ErrCandidateSkillNotFound
	}
	return nil
}

// ListProfiles returns every job seeker that holds at least one skill.
func (r *PostgresCandidateSkillRepository) ListProfiles(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id::text, u.name, cs.id::text, s.name, cs.level
		 FROM candidate_skills cs
		 JOIN users u ON u.id = cs.user_id
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE u.role = 'jobSeeker'
		 ORDER BY u.created_at ASC, u.id ASC, cs.created_at ASC, cs.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		var userID, name string
		var s skill.Skill
		var level *string
		if err := rows.Scan(&userID, &name, &s.ID, &s.Name, &level); err != nil {
			return nil, err
		}
		if level != nil {
			lvl := skill.ProficiencyLevel(*level)
			s.Level = &lvl
		}
		if n := len(out); n == 0 || out[n-1].UserID != userID {
			out = append(out, candidate.Profile{UserID: userID, DisplayName: name})
		}
		last := &out[len(out)-1]
		last.Skills = append(last.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
