// Package http provides http transport for slip submission
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api/slips/domain"

	slipsdom "tallybook/internal/services/slips/domain"
)

// Register mounts slip endpoints on the given router
func Register(r httpkit.Router, slips slipsdom.SlipPort) {
	h := &handlers{slips: slips}

	// dry runs: parse and total, never write
	httpkit.PostJSON[slipsdom.PreviewInput](r, "/preview", h.preview)
	httpkit.PostJSON[slipsdom.PreviewInput](r, "/jodi/preview", h.previewJodi)

	// gated submissions
	httpkit.PostJSON[slipsdom.SubmitInput](r, "/", h.submit)
	httpkit.PostJSON[slipsdom.SubmitInput](r, "/jodi", h.submitJodi)

	// history
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.HistoryInput](r, "/history", h.history)
}

type handlers struct{ slips slipsdom.SlipPort }

// swagger:route POST /slips/preview Slips slipsPreview
// @Summary Parse a mixed slip and total it without writing
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body slipsdom.PreviewInput true "Slip text"
// @Success 200 {object} slipsdom.Preview "ok"
// @Router /slips/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in slipsdom.PreviewInput) (any, error) {
	return h.slips.Preview(r.Context(), in)
}

// swagger:route POST /slips/jodi/preview Slips slipsJodiPreview
// @Summary Parse a jodi slip and total it without writing
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body slipsdom.PreviewInput true "Jodi text"
// @Success 200 {object} slipsdom.JodiPreview "ok"
// @Router /slips/jodi/preview [post]
func (h *handlers) previewJodi(r *stdhttp.Request, in slipsdom.PreviewInput) (any, error) {
	return h.slips.PreviewJodi(r.Context(), in)
}

// swagger:route POST /slips Slips slipsSubmit
// @Summary Submit a mixed slip; the expected total must match or nothing is written
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body slipsdom.SubmitInput true "Slip"
// @Success 201 {object} slipsdom.Receipt "created"
// @Router /slips [post]
func (h *handlers) submit(r *stdhttp.Request, in slipsdom.SubmitInput) (any, error) {
	receipt, err := h.slips.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(receipt), nil
}

// swagger:route POST /slips/jodi Slips slipsJodiSubmit
// @Summary Submit a jodi slip; the expected total must match or nothing is written
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body slipsdom.SubmitInput true "Jodi slip"
// @Success 201 {object} slipsdom.Receipt "created"
// @Router /slips/jodi [post]
func (h *handlers) submitJodi(r *stdhttp.Request, in slipsdom.SubmitInput) (any, error) {
	receipt, err := h.slips.SubmitJodi(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(receipt), nil
}

// swagger:route POST /slips/get Slips slipsGet
// @Summary Fetch one slip by id
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Slip id"
// @Success 200 {object} slipsdom.Slip "ok"
// @Router /slips/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.slips.Get(r.Context(), in.SlipID)
}

// swagger:route POST /slips/history Slips slipsHistory
// @Summary Page submission history with a keyset cursor
// @Tags Slips
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Filters and cursor"
// @Success 200 {array} slipsdom.Slip "ok"
// @Router /slips/history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	q, err := in.Query()
	if err != nil {
		return nil, err
	}
	return h.slips.List(r.Context(), q)
}
