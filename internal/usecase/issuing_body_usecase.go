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
	ErrIssuingBodyNotFound       = errors.New("issuing body not found")
	ErrInvalidIssuingBodyPayload = errors.New("invalid issuing body payload")
)

// IIssuingBodyUseCase manages the órgão catalog used by laudos.

type IIssuingBodyUseCase interface {
	Create(ctx context.Context, b entities.IssuingBody) (entities.IssuingBody, error)
	GetByID(ctx context.Context, id string) (entities.IssuingBody, error)
	List(ctx context.Context) ([]entities.IssuingBody, error)
}

type IssuingBodyUseCase struct {
	repo interfaces.IIssuingBodyRepository
}

var _ IIssuingBodyUseCase = (*IssuingBodyUseCase)(nil)

func NewIssuingBodyUseCase(repo interfaces.IIssuingBodyRepository) *IssuingBodyUseCase {
	return &IssuingBodyUseCase{repo: repo}
}

func (u *IssuingBodyUseCase) Create(ctx context.Context, b entities.IssuingBody) (entities.IssuingBody, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return entities.IssuingBody{}, ErrInvalidIssuingBodyPayload
	}

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, b)
}

func (u *IssuingBodyUseCase) GetByID(ctx context.Context, id string) (entities.IssuingBody, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.IssuingBody{}, ErrInvalidIssuingBodyPayload
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.IssuingBody{}, err
	}
	if b.ID == "" {
		return entities.IssuingBody{}, ErrIssuingBodyNotFound
	}
	return b, nil
}

func (u *IssuingBodyUseCase) List(ctx context.Context) ([]entities.IssuingBody, error) {
	return u.repo.List(ctx)
}
