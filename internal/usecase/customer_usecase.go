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
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrInvalidCustomerPayload = errors.New("invalid customer payload")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerPayload
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerPayload
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}
