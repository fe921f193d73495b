// Package module implements the bazars service module
package module

import (
	"tallybook/internal/modkit"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/bazars/domain"
	"tallybook/internal/services/bazars/repo"
	"tallybook/internal/services/bazars/service"
)

// Ports exposed by the bazars module
type Ports struct {
	Bazars domain.ServicePort
}

// Module implements the bazars service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new bazars module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Bazars: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "bazars" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
