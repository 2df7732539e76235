package request

import (
	"vistoria_itl/internal/domain/entities"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"tax_id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:  r.Name,
		TaxID: r.TaxID,
		Email: r.Email,
		Phone: r.Phone,
	}
}
