// Package domain holds DTOs for the ledger read surface
package domain

import (
	perr "tallybook/internal/platform/errors"
	tim "tallybook/internal/platform/time"

	slipsdom "tallybook/internal/services/slips/domain"
)

// BookInput selects one accumulated book: a bazar on a day
type BookInput struct {
	Bazar string `json:"bazar" validate:"required,bazar_code" example:"T.O"`
	Date  string `json:"date"  validate:"required,day" example:"2025-11-03"`
}

// Query converts the wire input into the service query
func (in BookInput) Query() (slipsdom.LedgerQuery, error) {
	day, err := tim.ParseDay(in.Date)
	if err != nil {
		return slipsdom.LedgerQuery{}, perr.WithField(perr.Validationf("date must be a date like 2025-11-03"), "date")
	}
	return slipsdom.LedgerQuery{Bazar: in.Bazar, Day: day}, nil
}

// SummaryInput selects cached per-customer totals over a window.
// Every filter is optional; an empty body returns everything
type SummaryInput struct {
	Bazar    string `json:"bazar,omitempty"    validate:"omitempty,bazar_code" example:"T.O"`
	Customer string `json:"customer,omitempty" validate:"omitempty,min=2,max=120" example:"anil"`
	Since    string `json:"since,omitempty"    validate:"omitempty,day" example:"2025-11-01"`
	Until    string `json:"until,omitempty"    validate:"omitempty,day" example:"2025-11-30"`
}

// Query converts the wire input into the service query
func (in SummaryInput) Query() (slipsdom.SummaryQuery, error) {
	q := slipsdom.SummaryQuery{Bazar: in.Bazar, Customer: in.Customer}
	if in.Since != "" {
		day, err := tim.ParseDay(in.Since)
		if err != nil {
			return q, perr.WithField(perr.Validationf("since must be a date like 2025-11-01"), "since")
		}
		q.Since = day
	}
	if in.Until != "" {
		day, err := tim.ParseDay(in.Until)
		if err != nil {
			return q, perr.WithField(perr.Validationf("until must be a date like 2025-11-30"), "until")
		}
		q.Until = day
	}
	return q, nil
}
