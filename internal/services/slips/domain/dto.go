package domain

import (
	"tallybook/internal/core/slipparse"
	"tallybook/internal/core/tally"
)

// PreviewInput is the dry-run payload: parse and total, never write.
// Customer, bazar and date are accepted so clients can reuse the submit
// body, but only the text matters for a preview
type PreviewInput struct {
	Customer  string `json:"customer,omitempty"   validate:"omitempty,min=2,max=120" example:"anil"`
	Bazar     string `json:"bazar,omitempty"      validate:"omitempty,bazar_code" example:"T.O"`
	EntryDate string `json:"entry_date,omitempty" validate:"omitempty,day" example:"2025-11-03"`
	Text      string `json:"text"                 validate:"required,min=1,max=20000" example:"138+347+459\n=100"`
}

// SubmitInput is the preview payload plus the confirmation gate.
// ExpectedTotal is what the runner read back to the customer; it must
// match the computed grand total or nothing is written
type SubmitInput struct {
	Customer      string `json:"customer"       validate:"required,min=2,max=120" example:"anil"`
	Bazar         string `json:"bazar"          validate:"required,bazar_code" example:"T.O"`
	EntryDate     string `json:"entry_date"     validate:"required,day" example:"2025-11-03"`
	Text          string `json:"text"           validate:"required,min=1,max=20000" example:"138+347+459\n=100"`
	ExpectedTotal int    `json:"expected_total" validate:"required,gt=0" example:"300"`
	Strict        bool   `json:"strict,omitempty"`
}

// Preview is the calculated view of a mixed slip before submission
type Preview struct {
	Lines       int                    `json:"lines"`
	EntryCount  int                    `json:"entry_count"`
	Totals      Totals                 `json:"totals"`
	PanaCredits []tally.Credit         `json:"pana_credits,omitempty"`
	TimeCredits []tally.Credit         `json:"time_credits,omitempty"`
	Diagnostics []slipparse.Diagnostic `json:"diagnostics,omitempty"`
}

// JodiPreview is the jodi dialect's dry-run view
type JodiPreview struct {
	Numbers []int `json:"numbers"`
	Value   int   `json:"value"`
	Total   int   `json:"total"`
}

// Receipt confirms a persisted submission
type Receipt struct {
	SlipID      string                 `json:"slip_id"`
	EntryCount  int                    `json:"entry_count"`
	Totals      Totals                 `json:"totals"`
	Diagnostics []slipparse.Diagnostic `json:"diagnostics,omitempty"`
}
