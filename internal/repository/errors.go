package repository

import (
	"context"
	"errors"

	"skill-match/internal/database"
)

var (
	ErrJobNotFound            = errors.New("job not found")
	ErrSkillNotFound          = errors.New("skill not found")
	ErrSkillExists            = errors.New("skill already exists")
	ErrCandidateSkillNotFound = errors.New("candidate skill not found")
	ErrCandidateSkillExists   = errors.New("candidate already has this skill")
)

// querier is the part of database.DB and database.Tx the repositories need,
// so the same helpers run inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (database.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, database.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, database.ErrUniqueViolation)
}
