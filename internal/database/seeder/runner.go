package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-match/internal/database"

	"go.uber.org/zap"
)

// Seeder loads one kind of fixture data. Run must be idempotent: seeding an
// already seeded database changes nothing.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults lists every seeder in run order. The catalog goes first so skills
// the demo corpus references keep their categories.
func Defaults() []Seeder {
	return []Seeder{SkillsSeeder{}, DemoSeeder{}}
}

type Runner struct {
	Seeders []Seeder
	Log     *zap.Logger
}

// Select keeps the seeders whose name is listed, in their original order.
// An empty list keeps all of them. Unknown names are an error.
func Select(all []Seeder, names []string) ([]Seeder, error) {
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(strings.TrimSpace(n))] = true
	}

	out := make([]Seeder, 0, len(want))
	for _, s := range all {
		if s == nil {
			continue
		}
		if want[s.Name()] {
			out = append(out, s)
			delete(want, s.Name())
		}
	}
	if len(want) > 0 {
		unknown := make([]string, 0, len(want))
		for n := range want {
			unknown = append(unknown, n)
		}
		return nil, fmt.Errorf("unknown seeders: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder done", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
