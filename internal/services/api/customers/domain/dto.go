// Package domain holds DTOs for the customers http surface
package domain

// CreateInput resolves a customer by name, creating it on first use
type CreateInput struct {
	Name string `json:"name" validate:"required,min=2,max=120" example:"anil"`
}

// RenameInput changes a customer's stored spelling
type RenameInput struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4" example:"7b5236fe-3f4c-4e0e-9e11-45c0fa4a4f6e"`
	Name       string `json:"name"        validate:"required,min=2,max=120" example:"anil bhai"`
}
