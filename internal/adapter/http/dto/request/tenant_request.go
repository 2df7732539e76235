package request

import (
	"vistoria_itl/internal/domain/entities"
)

// TenantRequest is the payload for creating or updating an ITL.
type TenantRequest struct {
	LegalName           string `json:"legal_name" binding:"required"`
	TaxID               string `json:"tax_id" binding:"required"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	PaymentSubAccountID string `json:"payment_sub_account_id"`
}

func (r TenantRequest) ToEntity() entities.Tenant {
	return entities.Tenant{
		LegalName:           r.LegalName,
		TaxID:               r.TaxID,
		Email:               r.Email,
		Phone:               r.Phone,
		PaymentSubAccountID: r.PaymentSubAccountID,
	}
}
