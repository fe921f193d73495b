// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"tallybook/internal/core/refdata"
	"tallybook/internal/core/version"
	"tallybook/internal/modkit/httpkit"
	perr "tallybook/internal/platform/errors"

	refdom "tallybook/internal/services/reftables/domain"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Tables      refdom.ProviderPort
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/tables", h.tables)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"tallybook-api"`
	Started string `json:"started"  example:"2026-08-25T09:00:00Z"`
	Now     string `json:"now"      example:"2026-08-25T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-25T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"tallybook-api"`
	Started string `json:"started" example:"2026-08-25T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// TablesResponse reports the reference dataset behind the parser
type TablesResponse struct {
	DatasetVersion int               `json:"dataset_version" example:"1"`
	Panas          int               `json:"panas"           example:"220"`
	SPColumns      int               `json:"sp_columns"      example:"10"`
	DPColumns      int               `json:"dp_columns"      example:"10"`
	CPColumns      int               `json:"cp_columns"      example:"22"`
	Build          version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)
	ch := check("ch", h.deps.CH)

	overall := "ok"
	if pg.Status != "ok" || ch.Status != "ok" {
		overall = "degraded"
		if pg.Status == "fail" || ch.Status == "fail" {
			overall = "fail"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg, ch},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/tables Meta metaTables
// @Summary Reference dataset version and shape
// @Tags Meta
// @Produce json
// @Success 200 type TablesResponse ok
// @Router /meta/tables [get]
func (h *handlers) tables(r *http.Request) (any, error) {
	if h.deps.Tables == nil {
		return nil, perr.Unavailablef("reference tables not configured")
	}
	snap, err := h.deps.Tables.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}

	out := TablesResponse{
		SPColumns: len(snap.Columns(refdata.SP)),
		DPColumns: len(snap.Columns(refdata.DP)),
		CPColumns: len(snap.Columns(refdata.CP)),
		Build:     version.Info(),
	}
	if v, ok := snap.(interface{ Version() int }); ok {
		out.DatasetVersion = v.Version()
	}
	if p, ok := snap.(interface{ PanaNumbers() []int }); ok {
		out.Panas = len(p.PanaNumbers())
	}
	return out, nil
}
