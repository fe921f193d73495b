// Package domain holds DTOs for the slips http surface
package domain

import (
	"time"

	perr "tallybook/internal/platform/errors"
	tim "tallybook/internal/platform/time"

	slipsdom "tallybook/internal/services/slips/domain"
)

// GetInput fetches one persisted slip by id
type GetInput struct {
	SlipID string `json:"slip_id" validate:"required,uuid4" example:"7b5236fe-3f4c-4e0e-9e11-45c0fa4a4f6e"`
}

// HistoryInput pages submission history. The keyset cursor is the
// created_at and id of the last slip on the previous page
type HistoryInput struct {
	Bazar     string `json:"bazar,omitempty"      validate:"omitempty,bazar_code" example:"T.O"`
	Customer  string `json:"customer,omitempty"   validate:"omitempty,min=2,max=120" example:"anil"`
	EntryDate string `json:"entry_date,omitempty" validate:"omitempty,day" example:"2025-11-03"`
	Limit     int    `json:"limit,omitempty"      validate:"omitempty,min=1,max=200" example:"50"`

	AfterCreatedAt string `json:"after_created_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-11-03T10:15:00Z"`
	AfterID        string `json:"after_id,omitempty"         validate:"omitempty,uuid4" example:"7b5236fe-3f4c-4e0e-9e11-45c0fa4a4f6e"`
}

// Query converts the wire input into the service query
func (in HistoryInput) Query() (slipsdom.ListQuery, error) {
	q := slipsdom.ListQuery{
		Bazar:    in.Bazar,
		Customer: in.Customer,
		Limit:    in.Limit,
		AfterID:  in.AfterID,
	}
	if in.EntryDate != "" {
		day, err := tim.ParseDay(in.EntryDate)
		if err != nil {
			return q, perr.WithField(perr.Validationf("entry_date must be a date like 2025-11-03"), "entry_date")
		}
		q.EntryDate = day
	}
	if in.AfterCreatedAt != "" {
		at, err := time.Parse(time.RFC3339, in.AfterCreatedAt)
		if err != nil {
			return q, perr.WithField(perr.Validationf("after_created_at must be RFC3339"), "after_created_at")
		}
		q.AfterCreatedAt = at
	}
	return q, nil
}
