// Package module wires the slips service and its collaborators
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/slips/domain"
	"tallybook/internal/services/slips/repo"
	"tallybook/internal/services/slips/service"
)

// Ports exposed by the slips module
type Ports struct {
	Slips   domain.SlipPort
	Ledgers domain.LedgerReadPort
}

// Module implements the slips service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new slips module. Collaborator ports must be
// injected with modkit.WithPorts(slips/domain.Ports)
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("slips"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("slips module: expected WithPorts(slips/domain.Ports)")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(deps.PG, repo.NewPG(), ports, service.Config{
		MaxLines: cfg.MaxLines,
		PageSize: cfg.PageSize,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Slips:   svc,
		Ledgers: svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "slips" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module; the http surface lives in the
// api slips module
func (m *Module) MountRoutes(r httpkit.Router) {}
