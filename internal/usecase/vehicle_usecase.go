package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrInvalidVehiclePayload = errors.New("invalid vehicle payload")
)

type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo         interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customerRepo interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	v.CustomerID = strings.TrimSpace(v.CustomerID)
	if v.Plate == "" || v.CustomerID == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePayload
	}

	owner, err := u.customerRepo.GetByID(ctx, v.CustomerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == "" {
		return entities.Vehicle{}, ErrCustomerNotFound
	}

	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehiclePayload
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerPayload
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}
