// Package module implements the entry log service module
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/ledger/domain"
	"tallybook/internal/services/ledger/repo"
	"tallybook/internal/services/ledger/service"
)

// Ports exposed by the ledger module
type Ports struct {
	Writer    domain.WriterPort
	Analytics domain.AnalyticsPort
	Admin     *service.Service
}

// Module implements the ledger service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new ledger module. With no clickhouse in deps the
// writer degrades to a no-op and analytics report unavailable.
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var storage *repo.CH
	if deps.CH != nil {
		storage = repo.NewCH(deps.CH)
	}
	svc := service.New(storage, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Writer:    svc,
		Analytics: svc,
		Admin:     svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "ledger" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
