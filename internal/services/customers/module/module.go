// Package module implements the customers service module
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/customers/domain"
	"tallybook/internal/services/customers/repo"
	"tallybook/internal/services/customers/service"
)

// Ports exposed by the customers module
type Ports struct {
	Customers domain.ServicePort
}

// Module implements the customers service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new customers module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Customers: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "customers" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
