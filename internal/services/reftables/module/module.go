// Package module implements the reftables service module
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/reftables/domain"
	"tallybook/internal/services/reftables/repo"
	"tallybook/internal/services/reftables/service"
)

// Ports exposed by the reftables module
type Ports struct {
	Provider domain.ProviderPort
	Seeder   domain.SeederPort
}

// Module implements the reftables service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new reftables module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(deps.PG, binder, service.Config{
		Source: opts.Source,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Provider: svc,
		Seeder:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reftables" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
