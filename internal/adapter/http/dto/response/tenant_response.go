package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type TenantResponse struct {
	ID                  string    `json:"id"`
	LegalName           string    `json:"legal_name"`
	TaxID               string    `json:"tax_id"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Active              bool      `json:"active"`
	PaymentSubAccountID string    `json:"payment_sub_account_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:                  t.ID,
		LegalName:           t.LegalName,
		TaxID:               t.TaxID,
		Email:               t.Email,
		Phone:               t.Phone,
		Active:              t.Active,
		PaymentSubAccountID: t.PaymentSubAccountID,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func FromTenants(ts []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTenant(t))
	}
	return out
}
