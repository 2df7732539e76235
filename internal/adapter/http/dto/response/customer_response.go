package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}
