// Command tallybook-export writes one bazar day's books to an xlsx file,
// the same workbook the API serves at /export/xlsx.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"tallybook/internal/modkit"
	"tallybook/internal/modkit/module"
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	"tallybook/internal/platform/store"
	tim "tallybook/internal/platform/time"

	bazarsmod "tallybook/internal/services/bazars/module"
	customersmod "tallybook/internal/services/customers/module"
	expdom "tallybook/internal/services/exports/domain"
	exportsmod "tallybook/internal/services/exports/module"
	ledgermod "tallybook/internal/services/ledger/module"
	reftablesmod "tallybook/internal/services/reftables/module"
	slipsdom "tallybook/internal/services/slips/domain"
	slipsmod "tallybook/internal/services/slips/module"
)

func main() {
	var (
		fBazar = flag.String("bazar", "", "bazar code like T.O")
		fDate  = flag.String("date", "", "entry date YYYY-MM-DD")
		fOut   = flag.String("out", "", "output path; defaults to the workbook's own name")
	)
	flag.Parse()

	l := logger.Get()
	if *fBazar == "" || *fDate == "" {
		l.Panic().Msg("need -bazar and -date")
	}
	day, err := tim.ParseDay(*fDate)
	if err != nil {
		l.Panic().Err(err).Msg("bad -date, want YYYY-MM-DD")
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		AppName: "tallybook-export",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(ctx) }()

	deps := modkit.Deps{Log: *l, Cfg: root, PG: st.PG, CH: st.CH}

	reftables := reftablesmod.New(deps)
	customers := customersmod.New(deps)
	bazars := bazarsmod.New(deps)
	ledger := ledgermod.New(deps)

	slips := slipsmod.New(deps, modkit.WithPorts(slipsdom.Ports{
		Tables:    module.MustPortsOf[reftablesmod.Ports](reftables).Provider,
		Customers: module.MustPortsOf[customersmod.Ports](customers).Customers,
		Bazars:    module.MustPortsOf[bazarsmod.Ports](bazars).Bazars,
		Entries:   module.MustPortsOf[ledgermod.Ports](ledger).Writer,
	}))
	exports := exportsmod.New(deps, modkit.WithPorts(expdom.Ports{
		Ledgers: module.MustPortsOf[slipsmod.Ports](slips).Ledgers,
	}))

	f, name, err := module.MustPortsOf[exportsmod.Ports](exports).Exporter.Workbook(ctx, *fBazar, day)
	if err != nil {
		l.Fatal().Err(err).Msg("workbook build failed")
	}
	defer func() { _ = f.Close() }()

	out := *fOut
	if out == "" {
		out = name
	}
	if err := f.SaveAs(out); err != nil {
		l.Fatal().Err(err).Str("path", out).Msg("workbook save failed")
	}
	_, _ = fmt.Fprintf(os.Stdout, "wrote %s\n", out)
}
