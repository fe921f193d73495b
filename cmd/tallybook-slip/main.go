// Command tallybook-slip parses a slip from a file or stdin and prints
// the calculated breakdown. With -submit it persists the slip through
// the same gate the API uses.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"tallybook/internal/core/jodi"
	"tallybook/internal/core/refdata"
	"tallybook/internal/core/slipparse"
	"tallybook/internal/core/tally"
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/module"
	"tallybook/internal/modkit/scope"
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	"tallybook/internal/platform/store"

	bazarsmod "tallybook/internal/services/bazars/module"
	customersmod "tallybook/internal/services/customers/module"
	ledgermod "tallybook/internal/services/ledger/module"
	reftablesmod "tallybook/internal/services/reftables/module"
	slipsdom "tallybook/internal/services/slips/domain"
	slipsmod "tallybook/internal/services/slips/module"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readText(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func main() {
	var (
		fFile   = flag.String("file", "", "slip text file; empty or '-' reads stdin")
		fJodi   = flag.Bool("jodi", false, "parse the jodi dialect instead of the mixed grammar")
		fJSON   = flag.Bool("json", false, "print the result as JSON")
		fStrict = flag.Bool("strict", false, "exit nonzero when any line fails to parse")

		fSubmit   = flag.Bool("submit", false, "persist the slip (needs -customer -bazar -date -expected and SERVICE_PGSQL_DBURL)")
		fCustomer = flag.String("customer", "", "customer name (submit)")
		fBazar    = flag.String("bazar", "", "bazar code like T.O (submit)")
		fDate     = flag.String("date", "", "entry date YYYY-MM-DD (submit)")
		fExpected = flag.Int("expected", 0, "expected grand total, the confirmation gate (submit)")
	)
	flag.Parse()

	text, err := readText(*fFile)
	must(err)

	if *fSubmit {
		submit(text, *fJodi, *fCustomer, *fBazar, *fDate, *fExpected, *fStrict)
		return
	}
	preview(text, *fJodi, *fJSON, *fStrict)
}

func preview(text string, asJodi, asJSON, strict bool) {
	if asJodi {
		e, err := jodi.Parse(text)
		must(err)
		if asJSON {
			enc, err := json.MarshalIndent(e, "", "  ")
			must(err)
			fmt.Println(string(enc))
			return
		}
		fmt.Printf("jodi  %d numbers x %d = %d\n", len(e.Numbers), e.Value, e.Total())
		for _, n := range e.Numbers {
			fmt.Printf("  %02d  %d\n", n, e.Value)
		}
		return
	}

	snap := refdata.MustLoad()
	batch, res := tally.ParseAndCalculate(text, snap)

	if asJSON {
		enc, err := json.MarshalIndent(struct {
			Totals      *tally.Result          `json:"totals"`
			Diagnostics []slipparse.Diagnostic `json:"diagnostics,omitempty"`
		}{res, batch.Diagnostics}, "", "  ")
		must(err)
		fmt.Println(string(enc))
	} else {
		printBreakdown(res)
		for _, d := range batch.Diagnostics {
			_, _ = fmt.Fprintf(os.Stderr, "skipped %q: %s\n", d.Line, d.Reason)
		}
	}

	if strict && len(batch.Diagnostics) > 0 {
		os.Exit(1)
	}
}

func printBreakdown(res *tally.Result) {
	fmt.Printf("pana    %8d\n", res.Pana)
	fmt.Printf("type    %8d\n", res.Type)
	fmt.Printf("time    %8d\n", res.Time)
	fmt.Printf("multi   %8d\n", res.Multi)
	fmt.Printf("direct  %8d\n", res.Direct)
	fmt.Printf("grand   %8d\n", res.Grand)

	if len(res.PanaCredits) > 0 {
		fmt.Println("\npana credits")
		for _, c := range res.PanaCredits {
			fmt.Printf("  %03d  %d\n", c.Number, c.Amount)
		}
	}
	if len(res.TimeCredits) > 0 {
		fmt.Println("\ntime credits")
		for _, c := range res.TimeCredits {
			fmt.Printf("  %d  %d\n", c.Number, c.Amount)
		}
	}
}

func submit(text string, asJodi bool, customer, bazar, date string, expected int, strict bool) {
	l := logger.Get()
	if customer == "" || bazar == "" || date == "" || expected <= 0 {
		l.Panic().Msg("submit needs -customer, -bazar, -date and a positive -expected")
	}

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	st, err := store.Open(context.Background(), store.Config{
		AppName: "tallybook-slip",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
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
	defer func() { _ = st.Close(context.Background()) }()

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
	port := module.MustPortsOf[slipsmod.Ports](slips).Slips

	ctx := scope.WithSource(context.Background(), "cli")
	in := slipsdom.SubmitInput{
		Customer:      customer,
		Bazar:         bazar,
		EntryDate:     date,
		Text:          text,
		ExpectedTotal: expected,
		Strict:        strict,
	}

	var receipt slipsdom.Receipt
	if asJodi {
		receipt, err = port.SubmitJodi(ctx, in)
	} else {
		receipt, err = port.Submit(ctx, in)
	}
	must(err)

	fmt.Printf("slip %s persisted: %d entries, grand %d\n", receipt.SlipID, receipt.EntryCount, receipt.Totals.Grand)
	for _, d := range receipt.Diagnostics {
		_, _ = fmt.Fprintf(os.Stderr, "skipped %q: %s\n", d.Line, d.Reason)
	}
}
