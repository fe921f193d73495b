// Package domain defines the types and interfaces for the customers service
package domain

import "time"

// Customer is one account holder in the book
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
