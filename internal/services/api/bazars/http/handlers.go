// Package http provides http transport for bazars
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api/bazars/domain"

	bazarsdom "tallybook/internal/services/bazars/domain"
)

// Register mounts bazar endpoints on the given router
func Register(r httpkit.Router, bazars bazarsdom.ServicePort) {
	h := &handlers{bazars: bazars}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
}

type handlers struct{ bazars bazarsdom.ServicePort }

// swagger:route GET /bazars Bazars bazarsList
// @Summary All bazars the book takes slips for
// @Tags Bazars
// @Produce json
// @Success 200 {array} bazarsdom.Bazar "ok"
// @Router /bazars [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.bazars.List(r.Context())
}

// swagger:route POST /bazars/check Bazars bazarsCheck
// @Summary Resolve a raw slip header code into its canonical bazar
// @Tags Bazars
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Code"
// @Success 200 {object} bazarsdom.Bazar "ok"
// @Router /bazars/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.bazars.Validate(r.Context(), in.Code)
}
