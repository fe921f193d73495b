// Package http provides http transport for the accumulated books
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api/ledgers/domain"

	slipsdom "tallybook/internal/services/slips/domain"
)

// Register mounts ledger read endpoints on the given router
func Register(r httpkit.Router, ledgers slipsdom.LedgerReadPort) {
	h := &handlers{ledgers: ledgers}

	// one bazar day per book
	httpkit.PostJSON[domain.BookInput](r, "/pana", h.pana)
	httpkit.PostJSON[domain.BookInput](r, "/time", h.time)
	httpkit.PostJSON[domain.BookInput](r, "/jodi", h.jodi)

	// cached per customer totals over a window
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)
}

type handlers struct{ ledgers slipsdom.LedgerReadPort }

// swagger:route POST /ledgers/pana Ledgers ledgersPana
// @Summary Accumulated pana book for a bazar day
// @Tags Ledgers
// @Accept json
// @Produce json
// @Param payload body domain.BookInput true "Book"
// @Success 200 {array} slipsdom.PanaLedgerRow "ok"
// @Router /ledgers/pana [post]
func (h *handlers) pana(r *stdhttp.Request, in domain.BookInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.ledgers.PanaLedger(r.Context(), q)
}

// swagger:route POST /ledgers/time Ledgers ledgersTime
// @Summary Accumulated time columns for a bazar day
// @Tags Ledgers
// @Accept json
// @Produce json
// @Param payload body domain.BookInput true "Book"
// @Success 200 {array} slipsdom.TimeLedgerRow "ok"
// @Router /ledgers/time [post]
func (h *handlers) time(r *stdhttp.Request, in domain.BookInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.ledgers.TimeLedger(r.Context(), q)
}

// swagger:route POST /ledgers/jodi Ledgers ledgersJodi
// @Summary Accumulated jodi book for a bazar day
// @Tags Ledgers
// @Accept json
// @Produce json
// @Param payload body domain.BookInput true "Book"
// @Success 200 {array} slipsdom.JodiLedgerRow "ok"
// @Router /ledgers/jodi [post]
func (h *handlers) jodi(r *stdhttp.Request, in domain.BookInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.ledgers.JodiLedger(r.Context(), q)
}

// swagger:route POST /ledgers/summary Ledgers ledgersSummary
// @Summary Cached per customer totals over a window
// @Tags Ledgers
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput true "Filters"
// @Success 200 {array} slipsdom.SummaryRow "ok"
// @Router /ledgers/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.ledgers.Summary(r.Context(), q)
}
