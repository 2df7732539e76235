package entities

import "time"

// IssuingBody is the regulatory body (órgão) stamped on inspection reports.
//
// Storage model (DynamoDB):
//   - PK: id

type IssuingBody struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
