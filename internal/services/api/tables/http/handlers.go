// Package http provides http transport for the reference charts
package http

import (
	stdhttp "net/http"

	"tallybook/internal/core/refdata"
	"tallybook/internal/modkit/httpkit"
	perr "tallybook/internal/platform/errors"

	"tallybook/internal/services/api/tables/domain"
	refdom "tallybook/internal/services/reftables/domain"
)

// Register mounts reference chart endpoints on the given router
func Register(r httpkit.Router, tables refdom.ProviderPort) {
	h := &handlers{tables: tables}

	httpkit.Get(r, "/", h.overview)
	httpkit.PostJSON[domain.ExpandInput](r, "/expand", h.expand)
}

type handlers struct{ tables refdom.ProviderPort }

// swagger:route GET /tables Tables tablesOverview
// @Summary Reference charts and their columns
// @Tags Tables
// @Produce json
// @Success 200 {object} domain.Overview "ok"
// @Router /tables [get]
func (h *handlers) overview(r *stdhttp.Request) (any, error) {
	snap, err := h.tables.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}

	out := domain.Overview{
		Charts: []domain.Chart{
			{Table: refdata.SP.String(), Columns: snap.Columns(refdata.SP)},
			{Table: refdata.DP.String(), Columns: snap.Columns(refdata.DP)},
			{Table: refdata.CP.String(), Columns: snap.Columns(refdata.CP)},
		},
	}
	if v, ok := snap.(interface{ Version() int }); ok {
		out.DatasetVersion = v.Version()
	}
	if p, ok := snap.(interface{ PanaNumbers() []int }); ok {
		out.Panas = len(p.PanaNumbers())
	}
	return out, nil
}

// swagger:route POST /tables/expand Tables tablesExpand
// @Summary Expand one chart column into its pana members
// @Tags Tables
// @Accept json
// @Produce json
// @Param payload body domain.ExpandInput true "Chart column"
// @Success 200 {object} domain.Expansion "ok"
// @Router /tables/expand [post]
func (h *handlers) expand(r *stdhttp.Request, in domain.ExpandInput) (any, error) {
	kind, ok := refdata.ParseKind(in.Table)
	if !ok {
		return nil, perr.WithField(perr.Validationf("table must be SP, DP or CP"), "table")
	}
	if !refdata.ValidColumn(kind, in.Column) {
		return nil, perr.WithField(perr.Validationf("column %d is out of range for %s", in.Column, kind), "column")
	}

	snap, err := h.tables.Snapshot(r.Context())
	if err != nil {
		return nil, err
	}
	nums := snap.Expand(kind, in.Column)
	if len(nums) == 0 {
		return nil, perr.NotFoundf("%s has no column %d", kind, in.Column)
	}

	return domain.Expansion{
		Table:   kind.String(),
		Column:  in.Column,
		Numbers: nums,
	}, nil
}
