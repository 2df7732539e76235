package entities

import "time"

// Customer is the person or company booking inspections.
//
// Storage model (DynamoDB):
//   - PK: id

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
