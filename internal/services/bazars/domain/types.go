// Package domain defines the types and interfaces for the bazars service
package domain

// Bazar is one market the book takes slips for. The list is fixed and
// seeded at migration time; codes are the short forms written on slips.
type Bazar struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Sort int    `json:"sort"`
}
