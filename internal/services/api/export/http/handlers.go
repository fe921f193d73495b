// Package http provides the workbook download endpoint
package http

import (
	"fmt"
	stdhttp "net/http"
	"strings"

	"tallybook/internal/modkit/httpkit"
	perr "tallybook/internal/platform/errors"
	tim "tallybook/internal/platform/time"

	expdom "tallybook/internal/services/exports/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Register mounts the export endpoints on the given router
func Register(r httpkit.Router, exporter expdom.ExportPort) {
	h := &handlers{exporter: exporter}

	// raw streaming handler; query params so the link pastes into a browser
	r.Get("/xlsx", h.xlsx)
}

type handlers struct{ exporter expdom.ExportPort }

// swagger:route GET /export/xlsx Export exportXlsx
// @Summary Download one bazar day's books as a workbook
// @Tags Export
// @Produce octet-stream
// @Param bazar query string true "Bazar code" example(T.O)
// @Param date query string true "Entry date" example(2025-11-03)
// @Success 200 {file} file "xlsx"
// @Router /export/xlsx [get]
func (h *handlers) xlsx(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q := r.URL.Query()

	bazar := strings.TrimSpace(q.Get("bazar"))
	if bazar == "" {
		httpkit.RespondError(w, r, perr.WithField(perr.Validationf("bazar is required"), "bazar"))
		return
	}
	day, err := tim.ParseDay(q.Get("date"))
	if err != nil {
		httpkit.RespondError(w, r, perr.WithField(perr.Validationf("date must be a date like 2025-11-03"), "date"))
		return
	}

	f, name, err := h.exporter.Workbook(r.Context(), bazar, day)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	// past this point the response is committed; a broken pipe is the
	// client's problem
	_, _ = f.WriteTo(w)
}
