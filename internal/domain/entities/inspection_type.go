package entities

import "time"

// InspectionType is a global catalog entry describing a kind of inspection.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - BasePriceCents and MaxVarianceCents are integer minor-currency units.
//     Tenant overrides must stay within [base-variance, base+variance].
//
// OrgaoID, when set, is the default issuing body stamped on laudos generated
// for appointments of this type.

type InspectionType struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	BasePriceCents   int64     `json:"base_price_cents"`
	MaxVarianceCents int64     `json:"max_variance_cents"`
	OrgaoID          string    `json:"orgao_id,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InspectionTypePricing is an optional per-tenant price override.
//
// Storage model (DynamoDB):
//   - PK: id (deterministic "<tenant_id>#<inspection_type_id>")
//
// The deterministic key guarantees at most one override per tenant/type pair.

type InspectionTypePricing struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	InspectionTypeID string    `json:"inspection_type_id"`
	PriceCents       int64     `json:"price_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PricingKey builds the deterministic override PK for a tenant/type pair.
func PricingKey(tenantID, inspectionTypeID string) string {
	return tenantID + "#" + inspectionTypeID
}

// WithinVariance reports whether an override price respects the type's
// allowed variance around the base price.
func (t InspectionType) WithinVariance(priceCents int64) bool {
	diff := priceCents - t.BasePriceCents
	if diff < 0 {
		diff = -diff
	}
	return diff <= t.MaxVarianceCents
}
