// Package module wires the exports service
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/exports/domain"
	"tallybook/internal/services/exports/service"
)

// Ports exposed by the exports module
type Ports struct {
	Exporter domain.ExportPort
}

// Module implements the exports service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new exports module. The slips ledger read port must
// be injected with modkit.WithPorts(exports/domain.Ports)
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("exports"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("exports module: expected WithPorts(exports/domain.Ports)")
	}

	m := &Module{deps: deps}
	m.ports = Ports{
		Exporter: service.New(ports.Ledgers),
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "exports" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; the download route lives in the
// api export module
func (m *Module) MountRoutes(r httpkit.Router) {}
