// Package domain holds DTOs for the entry log analytics surface
package domain

import (
	"time"

	perr "tallybook/internal/platform/errors"
	tim "tallybook/internal/platform/time"

	ledgerdom "tallybook/internal/services/ledger/domain"
)

// DayRange bounds a query window; both ends are inclusive days
type DayRange struct {
	Since string `json:"since" validate:"required,day" example:"2025-11-01"`
	Until string `json:"until" validate:"required,day" example:"2025-11-30"`
}

func parseRange(d DayRange) (since, until time.Time, err error) {
	since, err = tim.ParseDay(d.Since)
	if err != nil {
		return since, until, perr.WithField(perr.Validationf("since must be a date like 2025-11-01"), "range.since")
	}
	until, err = tim.ParseDay(d.Until)
	if err != nil {
		return since, until, perr.WithField(perr.Validationf("until must be a date like 2025-11-30"), "range.until")
	}
	if until.Before(since) {
		return since, until, perr.WithField(perr.Validationf("until is before since"), "range")
	}
	return since, until, nil
}

// TopNumbersInput asks for the busiest numbers in a window
type TopNumbersInput struct {
	Range DayRange `json:"range"`
	Bazar string   `json:"bazar,omitempty" validate:"omitempty,bazar_code" example:"T.O"`
	Kind  string   `json:"kind,omitempty"  validate:"omitempty,oneof=pana type time multi direct jodi" example:"pana"`
	Limit int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"20"`
}

// Query converts the wire input into the service query
func (in TopNumbersInput) Query() (ledgerdom.TopQuery, error) {
	since, until, err := parseRange(in.Range)
	if err != nil {
		return ledgerdom.TopQuery{}, err
	}
	return ledgerdom.TopQuery{
		Bazar: in.Bazar,
		Since: since,
		Until: until,
		Kind:  in.Kind,
		Limit: in.Limit,
	}, nil
}

// ActivityInput asks for per customer traffic in a window
type ActivityInput struct {
	Range    DayRange `json:"range"`
	Bazar    string   `json:"bazar,omitempty"    validate:"omitempty,bazar_code" example:"T.O"`
	Customer string   `json:"customer,omitempty" validate:"omitempty,min=2,max=120" example:"anil"`
}

// Query converts the wire input into the service query
func (in ActivityInput) Query() (ledgerdom.ActivityQuery, error) {
	since, until, err := parseRange(in.Range)
	if err != nil {
		return ledgerdom.ActivityQuery{}, err
	}
	return ledgerdom.ActivityQuery{
		Bazar:    in.Bazar,
		Customer: in.Customer,
		Since:    since,
		Until:    until,
	}, nil
}
