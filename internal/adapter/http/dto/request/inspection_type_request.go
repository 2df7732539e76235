package request

import (
	"vistoria_itl/internal/domain/entities"
)

// InspectionTypeRequest is the payload for catalog entries. Monetary values
// travel as integer cents.
type InspectionTypeRequest struct {
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category"`
	BasePriceCents   int64  `json:"base_price_cents" binding:"required"`
	MaxVarianceCents int64  `json:"max_variance_cents"`
	OrgaoID          string `json:"orgao_id"`
}

func (r InspectionTypeRequest) ToEntity() entities.InspectionType {
	return entities.InspectionType{
		Name:             r.Name,
		Category:         r.Category,
		BasePriceCents:   r.BasePriceCents,
		MaxVarianceCents: r.MaxVarianceCents,
		OrgaoID:          r.OrgaoID,
	}
}

// TenantPriceRequest sets a per-tenant override for an inspection type.
type TenantPriceRequest struct {
	PriceCents int64 `json:"price_cents" binding:"required"`
}
