package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type InspectionTypeResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category,omitempty"`
	BasePriceCents   int64     `json:"base_price_cents"`
	MaxVarianceCents int64     `json:"max_variance_cents"`
	OrgaoID          string    `json:"orgao_id,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromInspectionType(it entities.InspectionType) InspectionTypeResponse {
	return InspectionTypeResponse{
		ID:               it.ID,
		Name:             it.Name,
		Category:         it.Category,
		BasePriceCents:   it.BasePriceCents,
		MaxVarianceCents: it.MaxVarianceCents,
		OrgaoID:          it.OrgaoID,
		Active:           it.Active,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func FromInspectionTypes(its []entities.InspectionType) []InspectionTypeResponse {
	out := make([]InspectionTypeResponse, 0, len(its))
	for _, it := range its {
		out = append(out, FromInspectionType(it))
	}
	return out
}

type TenantPriceResponse struct {
	TenantID         string    `json:"tenant_id"`
	InspectionTypeID string    `json:"inspection_type_id"`
	PriceCents       int64     `json:"price_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPricing(p entities.InspectionTypePricing) TenantPriceResponse {
	return TenantPriceResponse{
		TenantID:         p.TenantID,
		InspectionTypeID: p.InspectionTypeID,
		PriceCents:       p.PriceCents,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ResolvedPriceResponse is the effective price computed for a tenant/type
// pair after applying override and variance rules.
type ResolvedPriceResponse struct {
	TenantID         string `json:"tenant_id"`
	InspectionTypeID string `json:"inspection_type_id"`
	PriceCents       int64  `json:"price_cents"`
}
