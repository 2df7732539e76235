package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInspectionTypeNotFound       = errors.New("inspection type not found")
	ErrInvalidInspectionTypePayload = errors.New("invalid inspection type payload")
	ErrPriceOutOfVariance           = errors.New("override price outside allowed variance")
)

// IInspectionTypeUseCase exposes the global inspection catalog plus the
// per-tenant price override operations.

type IInspectionTypeUseCase interface {
	Create(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error)
	GetByID(ctx context.Context, id string) (entities.InspectionType, error)
	List(ctx context.Context, activeOnly bool) ([]entities.InspectionType, error)
	Update(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error)
	Deactivate(ctx context.Context, id string) (entities.InspectionType, error)

	SetTenantPrice(ctx context.Context, tenantID, inspectionTypeID string, priceCents int64) (entities.InspectionTypePricing, error)
	RemoveTenantPrice(ctx context.Context, tenantID, inspectionTypeID string) error
}

type InspectionTypeUseCase struct {
	repo        interfaces.IInspectionTypeRepository
	tenantRepo  interfaces.ITenantRepository
	pricingRepo interfaces.IPricingRepository
}

var _ IInspectionTypeUseCase = (*InspectionTypeUseCase)(nil)

func NewInspectionTypeUseCase(repo interfaces.IInspectionTypeRepository, tenantRepo interfaces.ITenantRepository, pricingRepo interfaces.IPricingRepository) *InspectionTypeUseCase {
	return &InspectionTypeUseCase{repo: repo, tenantRepo: tenantRepo, pricingRepo: pricingRepo}
}

func (u *InspectionTypeUseCase) Create(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error) {
	it.Name = strings.TrimSpace(it.Name)
	if it.Name == "" || it.BasePriceCents < 0 || it.MaxVarianceCents < 0 {
		return entities.InspectionType{}, ErrInvalidInspectionTypePayload
	}

	now := time.Now().UTC()
	it.ID = uuid.NewString()
	it.Active = true
	it.CreatedAt = now
	it.UpdatedAt = now

	created, err := u.repo.Create(ctx, it)
	if err != nil {
		log.Printf("[catalog][usecase] inspection type create failed name=%q err=%v", it.Name, err)
		return entities.InspectionType{}, err
	}
	log.Printf("[catalog][usecase] inspection type create success type_id=%s", created.ID)
	return created, nil
}

func (u *InspectionTypeUseCase) GetByID(ctx context.Context, id string) (entities.InspectionType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InspectionType{}, ErrInvalidInspectionTypeID
	}

	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InspectionType{}, err
	}
	if it.ID == "" {
		return entities.InspectionType{}, ErrInspectionTypeNotFound
	}
	return it, nil
}

func (u *InspectionTypeUseCase) List(ctx context.Context, activeOnly bool) ([]entities.InspectionType, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}

	active := make([]entities.InspectionType, 0, len(all))
	for _, it := range all {
		if it.Active {
			active = append(active, it)
		}
	}
	return active, nil
}

func (u *InspectionTypeUseCase) Update(ctx context.Context, it entities.InspectionType) (entities.InspectionType, error) {
	current, err := u.GetByID(ctx, it.ID)
	if err != nil {
		return entities.InspectionType{}, err
	}

	it.Name = strings.TrimSpace(it.Name)
	if it.Name == "" || it.BasePriceCents < 0 || it.MaxVarianceCents < 0 {
		return entities.InspectionType{}, ErrInvalidInspectionTypePayload
	}

	it.Active = current.Active
	it.CreatedAt = current.CreatedAt
	it.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, it)
}

func (u *InspectionTypeUseCase) Deactivate(ctx context.Context, id string) (entities.InspectionType, error) {
	it, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InspectionType{}, err
	}

	it.Active = false
	it.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, it)
}

// SetTenantPrice upserts a tenant override, enforcing
// |override - base| <= variance at write time.
func (u *InspectionTypeUseCase) SetTenantPrice(ctx context.Context, tenantID, inspectionTypeID string, priceCents int64) (entities.InspectionTypePricing, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.InspectionTypePricing{}, ErrInvalidTenantID
	}

	tenant, err := u.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return entities.InspectionTypePricing{}, err
	}
	if tenant.ID == "" {
		return entities.InspectionTypePricing{}, ErrTenantNotFound
	}

	it, err := u.GetByID(ctx, inspectionTypeID)
	if err != nil {
		return entities.InspectionTypePricing{}, err
	}
	if priceCents < 0 || !it.WithinVariance(priceCents) {
		return entities.InspectionTypePricing{}, ErrPriceOutOfVariance
	}

	now := time.Now().UTC()
	p := entities.InspectionTypePricing{
		ID:               entities.PricingKey(tenantID, it.ID),
		TenantID:         tenantID,
		InspectionTypeID: it.ID,
		PriceCents:       priceCents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	saved, err := u.pricingRepo.Put(ctx, p)
	if err != nil {
		log.Printf("[catalog][usecase] pricing put failed tenant_id=%s type_id=%s err=%v", tenantID, it.ID, err)
		return entities.InspectionTypePricing{}, err
	}
	log.Printf("[catalog][usecase] pricing put success tenant_id=%s type_id=%s price_cents=%d", tenantID, it.ID, priceCents)
	return saved, nil
}

func (u *InspectionTypeUseCase) RemoveTenantPrice(ctx context.Context, tenantID, inspectionTypeID string) error {
	tenantID = strings.TrimSpace(tenantID)
	inspectionTypeID = strings.TrimSpace(inspectionTypeID)
	if tenantID == "" {
		return ErrInvalidTenantID
	}
	if inspectionTypeID == "" {
		return ErrInvalidInspectionTypeID
	}
	return u.pricingRepo.DeleteByTenantAndType(ctx, tenantID, inspectionTypeID)
}
