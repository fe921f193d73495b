// Package api provides the HTTP API for the application
package api

import (
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	phttp "tallybook/internal/platform/net/http"
	"tallybook/internal/platform/store"

	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/module"
	"tallybook/internal/modkit/swaggerkit"

	apianalytics "tallybook/internal/services/api/analytics/module"
	apibazars "tallybook/internal/services/api/bazars/module"
	apicustomers "tallybook/internal/services/api/customers/module"
	apiexport "tallybook/internal/services/api/export/module"
	apiledgers "tallybook/internal/services/api/ledgers/module"
	metamod "tallybook/internal/services/api/meta/module"
	apislips "tallybook/internal/services/api/slips/module"
	apitables "tallybook/internal/services/api/tables/module"

	// port-owning service modules behind the API surface
	bazarsmod "tallybook/internal/services/bazars/module"
	customersmod "tallybook/internal/services/customers/module"
	expdom "tallybook/internal/services/exports/domain"
	exportsmod "tallybook/internal/services/exports/module"
	ledgermod "tallybook/internal/services/ledger/module"
	reftablesmod "tallybook/internal/services/reftables/module"
	slipsdom "tallybook/internal/services/slips/domain"
	slipsmod "tallybook/internal/services/slips/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the port-owning service modules first and extract the
	// ports the slip pipeline needs
	reftables := reftablesmod.New(deps)
	customers := customersmod.New(deps)
	bazars := bazarsmod.New(deps)
	ledger := ledgermod.New(deps)

	refPorts := module.MustPortsOf[reftablesmod.Ports](reftables)
	custPorts := module.MustPortsOf[customersmod.Ports](customers)
	bazarPorts := module.MustPortsOf[bazarsmod.Ports](bazars)
	ledgerPorts := module.MustPortsOf[ledgermod.Ports](ledger)

	// The slips module is the pipeline heart: tables feed the parser,
	// bazars and customers gate the header, the ledger logs entries
	slips := slipsmod.New(deps, modkit.WithPorts(slipsdom.Ports{
		Tables:    refPorts.Provider,
		Customers: custPorts.Customers,
		Bazars:    bazarPorts.Bazars,
		Entries:   ledgerPorts.Writer,
	}))
	slipsPorts := module.MustPortsOf[slipsmod.Ports](slips)

	// Exports read the same books the slips module accumulates
	exports := exportsmod.New(deps, modkit.WithPorts(expdom.Ports{
		Ledgers: slipsPorts.Ledgers,
	}))
	exportPorts := module.MustPortsOf[exportsmod.Ports](exports)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Tables: refPorts.Provider})),
		apitables.New(deps, modkit.WithPorts(apitables.Ports{Tables: refPorts.Provider})),
		apicustomers.New(deps, modkit.WithPorts(apicustomers.Ports{Customers: custPorts.Customers})),
		apibazars.New(deps, modkit.WithPorts(apibazars.Ports{Bazars: bazarPorts.Bazars})),
		apislips.New(deps, modkit.WithPorts(apislips.Ports{Slips: slipsPorts.Slips})),
		apiledgers.New(deps, modkit.WithPorts(apiledgers.Ports{Ledgers: slipsPorts.Ledgers})),
		apianalytics.New(deps, modkit.WithPorts(apianalytics.Ports{Analytics: ledgerPorts.Analytics})),
		apiexport.New(deps, modkit.WithPorts(apiexport.Ports{Exporter: exportPorts.Exporter})),

		// include the port owners so their ports are registered
		reftables,
		customers,
		bazars,
		ledger,
		slips,
		exports,
	}

	// versioned API with a common middleware stack; every submission
	// that lands here is tagged as an api entry
	mw := append(httpkit.CommonStack(), httpkit.SourceTag("api"))
	httpkit.MountAPIV1(r, mw, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
