package seeder

import (
	"context"
	"fmt"

	"skill-match/internal/database"
)

type catalogEntry struct {
	Name     string
	Category string
}

var commonSkills = []catalogEntry{
	{Name: "JavaScript", Category: "Programming Language"},
	{Name: "TypeScript", Category: "Programming Language"},
	{Name: "Java", Category: "Programming Language"},
	{Name: "Python", Category: "Programming Language"},
	{Name: "Go", Category: "Programming Language"},
	{Name: "SQL", Category: "Database"},
	{Name: "PostgreSQL", Category: "Database"},
	{Name: "Redis", Category: "Database"},
	{Name: "React", Category: "Frontend"},
	{Name: "Redux", Category: "Frontend"},
	{Name: "HTML", Category: "Frontend"},
	{Name: "CSS", Category: "Frontend"},
	{Name: "Node.js", Category: "Backend"},
	{Name: "Express", Category: "Backend"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "Kubernetes", Category: "DevOps"},
	{Name: "Git", Category: "Tooling"},
	{Name: "AWS", Category: "Cloud"},
	{Name: "GCP", Category: "Cloud"},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range commonSkills {
		if _, err := upsertSkill(ctx, tx, it.Name, it.Category); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// upsertSkill returns the id of the catalog skill whose folded name equals
// name's, inserting it first when missing.
func upsertSkill(ctx context.Context, tx database.Tx, name, category string) (string, error) {
	var id string
	err := tx.QueryRow(
		ctx,
		`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2)
		 ON CONFLICT ((lower(btrim(name)))) DO UPDATE SET name = skills.name
		 RETURNING id::text`,
		name,
		category,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert skill %q: %w", name, err)
	}
	return id, nil
}
