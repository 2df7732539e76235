package interfaces

import (
	"context"

	"vistoria_itl/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
//
// Tenants referenced by appointments are deactivated through Update, never
// removed, so there is no Delete operation.

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
}

// IInspectionTypeRepository abstracts DynamoDB persistence for InspectionType.

type IInspectionTypeRepository interface {
	Create(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error)
	GetByID(ctx context.Context, id string) (entities.InspectionType, error)
	List(ctx context.Context) ([]entities.InspectionType, error)
	Update(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error)
}

// IPricingRepository abstracts the per-tenant price override table.
//
// GetByTenantAndType returns the zero value when no override exists; callers
// fall back to the type's base price.

type IPricingRepository interface {
	Put(ctx context.Context, p entities.InspectionTypePricing) (entities.InspectionTypePricing, error)
	GetByTenantAndType(ctx context.Context, tenantID, inspectionTypeID string) (entities.InspectionTypePricing, error)
	DeleteByTenantAndType(ctx context.Context, tenantID, inspectionTypeID string) error
}

// IIssuingBodyRepository abstracts the órgão catalog.

type IIssuingBodyRepository interface {
	Create(ctx context.Context, b entities.IssuingBody) (entities.IssuingBody, error)
	GetByID(ctx context.Context, id string) (entities.IssuingBody, error)
	List(ctx context.Context) ([]entities.IssuingBody, error)
}
