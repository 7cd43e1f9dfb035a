package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	csvadapter "campaign-analytics/internal/adapter/csv"
	"campaign-analytics/internal/adapter/postgres"
	"campaign-analytics/internal/adapter/usecase"
	"campaign-analytics/internal/config"
	"campaign-analytics/internal/config/configs"
	"campaign-analytics/internal/core/engine"
	"campaign-analytics/internal/core/port"
	"campaign-analytics/internal/db"
)

// app carries what every command needs once configuration is loaded.
type app struct {
	envFiles []string
	cfg      config.Config
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "campaign-analytics",
		Short:         "Marketing campaign reports over an imported campaign table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before the environment (default .env)")

	root.AddCommand(
		newServeCmd(a),
		newReportCmd(a),
		newImportCmd(a),
		newSeedCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = newLogger(cfg.Log)
	return nil
}

func newLogger(cfg configs.Logger) *slog.Logger {
	return slog.New(cfg.Handler(os.Stderr))
}

// migrateIfConfigured applies migrations when PSQL_RUN_MIGRATIONS is set.
func (a *app) migrateIfConfigured() error {
	if !a.cfg.Psql.RunMigrations {
		return nil
	}
	if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.logger.Info("migrations applied successfully")
	return nil
}

// openStore connects to the campaign store. The returned func closes the
// pool.
func (a *app) openStore(ctx context.Context) (*postgres.CampaignRepository, func(), error) {
	if err := a.migrateIfConfigured(); err != nil {
		return nil, nil, err
	}
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewCampaignRepository(pool), pool.Close, nil
}

// openSource returns the configured campaign source.
func (a *app) openSource(ctx context.Context) (port.CampaignSource, func(), error) {
	kind, err := a.cfg.Dataset.Kind()
	if err != nil {
		return nil, nil, err
	}
	if kind == configs.SourcePostgres {
		repo, closeFn, err := a.openStore(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repo, closeFn, nil
	}
	return csvadapter.NewFileSource(a.cfg.Dataset.Path), func() {}, nil
}

func (a *app) newUseCase(source port.CampaignSource) *usecase.ReportUseCase {
	catalog := engine.Catalog(a.cfg.Report.Thresholds())
	return usecase.NewReportUseCase(source, catalog, a.cfg.Report.Workers, a.logger)
}
