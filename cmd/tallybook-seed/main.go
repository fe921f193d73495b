// Command tallybook-seed prepares a database for the API and the CLI tools:
// it applies the goose migrations, loads the embedded pana dataset into the
// reference tables, and (when clickhouse is enabled) creates the entry log.
package main

import (
	"context"
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql; goose wants *sql.DB
	"github.com/pressly/goose/v3"

	"tallybook/internal/modkit"
	"tallybook/internal/modkit/module"
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	"tallybook/internal/platform/store"
	"tallybook/migrations"

	ledgermod "tallybook/internal/services/ledger/module"
	reftablesmod "tallybook/internal/services/reftables/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	var (
		fSkipMigrate = flag.Bool("skip-migrate", false, "skip migrations, only refresh reference data")
		fMigrateOnly = flag.Bool("migrate-only", false, "apply migrations and exit without seeding")
	)
	flag.Parse()

	if *fSkipMigrate && *fMigrateOnly {
		l.Panic().Msg("--skip-migrate and --migrate-only are mutually exclusive")
	}

	ctx := context.Background()
	dsn := pgCfg.MustString("DBURL")

	if !*fSkipMigrate {
		migrate(ctx, l, dsn)
	}
	if *fMigrateOnly {
		return
	}

	st, err := store.Open(ctx, store.Config{
		AppName: "tallybook-seed",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dsn,
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			URL:     chCfg.MayString("DBURL", ""),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st.PG,
		CH:  st.CH,
	}

	rt := reftablesmod.New(deps)
	module.Register(rt.Name(), rt.Ports())
	if err := module.MustPortsOf[reftablesmod.Ports](rt).Seeder.Seed(ctx); err != nil {
		l.Fatal().Err(err).Msg("reference table seed failed")
	}
	l.Info().Msg("reference tables seeded")

	lg := ledgermod.New(deps)
	module.Register(lg.Name(), lg.Ports())
	admin := module.MustPortsOf[ledgermod.Ports](lg).Admin
	if admin.Enabled() {
		if err := admin.EnsureSchema(ctx); err != nil {
			l.Fatal().Err(err).Msg("clickhouse schema setup failed")
		}
		l.Info().Msg("clickhouse entry log ready")
	}
}

func migrate(ctx context.Context, l *logger.Logger, dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		l.Panic().Err(err).Msg("sql.Open failed")
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close migration connection")
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		l.Panic().Err(err).Msg("goose provider failed")
	}
	results, err := provider.Up(ctx)
	if err != nil {
		l.Panic().Err(err).Msg("goose up failed")
	}
	for _, res := range results {
		l.Info().Str("migration", res.Source.Path).Dur("took", res.Duration).Msg("applied")
	}
}
