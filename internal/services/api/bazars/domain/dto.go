// Package domain holds DTOs for the bazars http surface
package domain

// CheckInput resolves a raw slip header code into its canonical bazar.
// The code is deliberately not held to the canonical shape here; this
// endpoint exists to answer for whatever the operator typed
type CheckInput struct {
	Code string `json:"code" validate:"required,min=1,max=16" example:"t.o"`
}
