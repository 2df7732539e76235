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
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrInvalidTenantPayload = errors.New("invalid tenant payload")
)

// ITenantUseCase exposes platform-admin operations over tenants (ITLs).
//
// Deactivate is the delete path: tenants referenced by appointments are
// soft-deactivated, never removed.

type ITenantUseCase interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	Deactivate(ctx context.Context, id string) (entities.Tenant, error)
}

type TenantUseCase struct {
	repo interfaces.ITenantRepository
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

func (u *TenantUseCase) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	t.LegalName = strings.TrimSpace(t.LegalName)
	t.TaxID = strings.TrimSpace(t.TaxID)
	if t.LegalName == "" || t.TaxID == "" {
		return entities.Tenant{}, ErrInvalidTenantPayload
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.Active = true
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[tenant][usecase] create failed legal_name=%q err=%v", t.LegalName, err)
		return entities.Tenant{}, err
	}
	log.Printf("[tenant][usecase] create success tenant_id=%s", created.ID)
	return created, nil
}

func (u *TenantUseCase) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidTenantID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *TenantUseCase) List(ctx context.Context) ([]entities.Tenant, error) {
	return u.repo.List(ctx)
}

func (u *TenantUseCase) Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	current, err := u.GetByID(ctx, t.ID)
	if err != nil {
		return entities.Tenant{}, err
	}

	t.LegalName = strings.TrimSpace(t.LegalName)
	t.TaxID = strings.TrimSpace(t.TaxID)
	if t.LegalName == "" || t.TaxID == "" {
		return entities.Tenant{}, ErrInvalidTenantPayload
	}

	t.Active = current.Active
	t.CreatedAt = current.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, t)
}

func (u *TenantUseCase) Deactivate(ctx context.Context, id string) (entities.Tenant, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}

	t.Active = false
	t.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		log.Printf("[tenant][usecase] deactivate failed tenant_id=%s err=%v", id, err)
		return entities.Tenant{}, err
	}
	log.Printf("[tenant][usecase] deactivate success tenant_id=%s", id)
	return updated, nil
}
