package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"skill-match/internal/app"
	"skill-match/internal/config"
	"skill-match/internal/database/migration"
	dbpostgres "skill-match/internal/database/postgres"
	"skill-match/internal/database/seeder"
	"skill-match/migrations"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := setup(v)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
				if err := runMigrations(ctx, cfg.Database, lg); err != nil {
					return err
				}
			}
			return app.Serve(ctx, cfg, lg)
		},
	}
	cmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := setup(v)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()
			return runMigrations(cmd.Context(), cfg.Database, lg)
		},
	}
}

func newSeedCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the skill catalog and demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := setup(v)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			if !cfg.Database.Enabled() {
				return errNoDatabase
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			only, _ := cmd.Flags().GetStringSlice("only")
			seeders, err := seeder.Select(seeder.Defaults(), only)
			if err != nil {
				return err
			}
			return seeder.Runner{Seeders: seeders, Log: lg.Named("seed")}.Run(ctx, db)
		},
	}
	cmd.Flags().StringSlice("only", nil, "run only these seeders (skills, demo)")
	return cmd
}

var errNoDatabase = errors.New("database is not configured: set DB_HOST and DB_NAME")

func runMigrations(ctx context.Context, cfg config.DatabaseConfig, lg *zap.Logger) error {
	if !cfg.Enabled() {
		return errNoDatabase
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := migration.Runner{FS: migrations.FS, Log: lg.Named("migrate")}.Run(ctx, db.SQLDB())
	if err != nil {
		return err
	}
	lg.Info("migrations applied", zap.Int("count", n))
	return nil
}
