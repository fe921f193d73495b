// Package http provides http transport for entry log analytics
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api/analytics/domain"

	ledgerdom "tallybook/internal/services/ledger/domain"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, log ledgerdom.AnalyticsPort) {
	h := &handlers{log: log}

	// busiest numbers in window
	httpkit.PostJSON[domain.TopNumbersInput](r, "/top-numbers", h.topNumbers)

	// per customer traffic by day and kind
	httpkit.PostJSON[domain.ActivityInput](r, "/activity", h.activity)
}

type handlers struct{ log ledgerdom.AnalyticsPort }

// swagger:route POST /analytics/top-numbers Analytics analyticsTopNumbers
// @Summary Busiest numbers in a window
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.TopNumbersInput true "Query"
// @Success 200 {array} ledgerdom.TopNumberRow "ok"
// @Router /analytics/top-numbers [post]
func (h *handlers) topNumbers(r *stdhttp.Request, in domain.TopNumbersInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.log.TopNumbers(r.Context(), q)
}

// swagger:route POST /analytics/activity Analytics analyticsActivity
// @Summary Per customer traffic by day and kind
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.ActivityInput true "Query"
// @Success 200 {array} ledgerdom.ActivityRow "ok"
// @Router /analytics/activity [post]
func (h *handlers) activity(r *stdhttp.Request, in domain.ActivityInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.log.Activity(r.Context(), q)
}
