package usecase

import (
	"context"
	"errors"
	"strings"

	"vistoria_itl/internal/usecase/interfaces"
)

var (
	ErrInvalidTenantID         = errors.New("invalid tenant id")
	ErrInvalidInspectionTypeID = errors.New("invalid inspection type id")
)

// IPricingUseCase resolves the effective price charged for an inspection.
//
// Resolution order:
//   - tenant override, when present and within the type's allowed variance
//   - the type's base price otherwise
//
// The result may legitimately be 0; callers must treat 0 as "cannot charge",
// never as "free" (charge creation rejects it before any external call).

type IPricingUseCase interface {
	ResolvePrice(ctx context.Context, tenantID, inspectionTypeID string) (int64, error)
}

type PricingUseCase struct {
	tenantRepo  interfaces.ITenantRepository
	typeRepo    interfaces.IInspectionTypeRepository
	pricingRepo interfaces.IPricingRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(tenantRepo interfaces.ITenantRepository, typeRepo interfaces.IInspectionTypeRepository, pricingRepo interfaces.IPricingRepository) *PricingUseCase {
	return &PricingUseCase{tenantRepo: tenantRepo, typeRepo: typeRepo, pricingRepo: pricingRepo}
}

func (u *PricingUseCase) ResolvePrice(ctx context.Context, tenantID, inspectionTypeID string) (int64, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return 0, ErrInvalidTenantID
	}
	inspectionTypeID = strings.TrimSpace(inspectionTypeID)
	if inspectionTypeID == "" {
		return 0, ErrInvalidInspectionTypeID
	}

	// Tenant linkage only gates catalog visibility, not pricing; existence is
	// the only requirement here.
	tenant, err := u.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if tenant.ID == "" {
		return 0, ErrTenantNotFound
	}

	it, err := u.typeRepo.GetByID(ctx, inspectionTypeID)
	if err != nil {
		return 0, err
	}
	if it.ID == "" || !it.Active {
		return 0, ErrInspectionTypeNotFound
	}

	override, err := u.pricingRepo.GetByTenantAndType(ctx, tenantID, inspectionTypeID)
	if err != nil {
		return 0, err
	}
	if override.ID != "" && it.WithinVariance(override.PriceCents) {
		return override.PriceCents, nil
	}
	return it.BasePriceCents, nil
}
