package entities

import "time"

// Seller earns a commission over the budgets assigned to them.
type Seller struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	CommissionPercentage float64   `json:"commission_percentage"`
	RegistrationNumber   string    `json:"registration_number,omitempty"`
	Active               bool      `json:"active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
