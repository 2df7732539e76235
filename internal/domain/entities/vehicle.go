package entities

import "time"

// Vehicle is the inspected vehicle, owned by a customer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id

type Vehicle struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Plate      string    `json:"plate"`
	Renavam    string    `json:"renavam,omitempty"`
	Make       string    `json:"make,omitempty"`
	Model      string    `json:"model,omitempty"`
	Year       int       `json:"year,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
