// Package http provides http transport for customers
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api/customers/domain"

	customersdom "tallybook/internal/services/customers/domain"
)

// Register mounts customer endpoints on the given router
func Register(r httpkit.Router, customers customersdom.ServicePort) {
	h := &handlers{customers: customers}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.RenameInput](r, "/rename", h.rename)
}

type handlers struct{ customers customersdom.ServicePort }

// swagger:route GET /customers Customers customersList
// @Summary All customers in the book
// @Tags Customers
// @Produce json
// @Success 200 {array} customersdom.Customer "ok"
// @Router /customers [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.customers.List(r.Context())
}

// swagger:route POST /customers Customers customersCreate
// @Summary Resolve a customer by name, creating it on first use
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Customer"
// @Success 200 {object} customersdom.Customer "ok"
// @Router /customers [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.customers.GetOrCreate(r.Context(), in.Name)
}

// swagger:route POST /customers/rename Customers customersRename
// @Summary Rename a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.RenameInput true "New spelling"
// @Success 200 {object} customersdom.Customer "ok"
// @Router /customers/rename [post]
func (h *handlers) rename(r *stdhttp.Request, in domain.RenameInput) (any, error) {
	return h.customers.Rename(r.Context(), in.CustomerID, in.Name)
}
