package entities

import "time"

// Tenant is an inspection establishment (ITL) using the platform.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PaymentSubAccountID, when present, is the Mercado Pago sub-account that
// receives the split of charges created for this tenant's appointments.
// Tenants referenced by appointments are deactivated, never deleted.

type Tenant struct {
	ID                  string    `json:"id"`
	LegalName           string    `json:"legal_name"`
	TaxID               string    `json:"tax_id"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Active              bool      `json:"active"`
	PaymentSubAccountID string    `json:"payment_sub_account_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
