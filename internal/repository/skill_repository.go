package repository

import (
	"context"
	"fmt"
	"strings"

	"skill-match/internal/database"
	"skill-match/internal/domain/skill"
)

type SkillRepository interface {
	List(ctx context.Context) ([]skill.CatalogSkill, error)
	FindByName(ctx context.Context, name string) (skill.CatalogSkill, error)
	Create(ctx context.Context, name, category string) (skill.CatalogSkill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const catalogColumns = `id::text, name, category, created_at`

func scanCatalog(row database.Row) (skill.CatalogSkill, error) {
	var s skill.CatalogSkill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt)
	return s, err
}

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.CatalogSkill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+catalogColumns+` FROM skills ORDER BY lower(name) ASC`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	out := make([]skill.CatalogSkill, 0)
	for rows.Next() {
		s, err := scanCatalog(rows)
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

// FindByName looks the name up case-insensitively, ignoring surrounding
// whitespace on both sides.
func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (skill.CatalogSkill, error) {
	s, err := scanCatalog(r.db.QueryRow(ctx,
		`SELECT `+catalogColumns+` FROM skills WHERE lower(btrim(name)) = lower(btrim($1))`,
		name,
	))
	if err != nil {
		if isNoRows(err) {
			return skill.CatalogSkill{}, ErrSkillNotFound
		}
		return skill.CatalogSkill{}, fmt.Errorf("find skill: %w", err)
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, name, category string) (skill.CatalogSkill, error) {
	s, err := scanCatalog(r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) RETURNING `+catalogColumns,
		strings.TrimSpace(name), strings.TrimSpace(category),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return skill.CatalogSkill{}, ErrSkillExists
		}
		return skill.CatalogSkill{}, fmt.Errorf("create skill: %w", err)
	}
	return s, nil
}

// resolveSkill returns the catalog entry for name, adding it when missing.
func resolveSkill(ctx context.Context, q querier, name string) (skill.CatalogSkill, error) {
	s, err := scanCatalog(q.QueryRow(ctx,
		`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, '')
		 ON CONFLICT ((lower(btrim(name)))) DO UPDATE SET name = skills.name
		 RETURNING `+catalogColumns,
		strings.TrimSpace(name),
	))
	if err != nil {
		return skill.CatalogSkill{}, fmt.Errorf("resolve skill %q: %w", name, err)
	}
	return s, nil
}
