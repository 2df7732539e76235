package usecase

import (
	"context"
	"errors"
	"testing"

	"vistoria_itl/internal/domain/entities"
	mock_interfaces "vistoria_itl/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTenantUseCase_Create(t *testing.T) {
	t.Run("missing legal name", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Tenant{LegalName: " ", TaxID: "11222333000144"})
		if !errors.Is(err, ErrInvalidTenantPayload) {
			t.Fatalf("expected ErrInvalidTenantPayload, got %v", err)
		}
	})

	t.Run("missing tax id", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Tenant{LegalName: "ITL Centro"})
		if !errors.Is(err, ErrInvalidTenantPayload) {
			t.Fatalf("expected ErrInvalidTenantPayload, got %v", err)
		}
	})

	t.Run("success starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tenant entities.Tenant) (entities.Tenant, error) {
				if tenant.ID == "" || !tenant.Active {
					t.Fatalf("new tenant must have id and be active: %+v", tenant)
				}
				return tenant, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Tenant{LegalName: " ITL Centro ", TaxID: " 11222333000144 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.LegalName != "ITL Centro" || res.TaxID != "11222333000144" {
			t.Fatalf("fields not trimmed: %+v", res)
		}
	})
}

func TestTenantUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewTenantUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{}, nil)

		_, err := uc.GetByID(context.Background(), "ten-1")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})
}

func TestTenantUseCase_UpdateAndDeactivate(t *testing.T) {
	t.Run("update preserves active flag and created_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)

		current := entities.Tenant{ID: "ten-1", LegalName: "ITL Centro", TaxID: "11222333000144", Active: false}
		repo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tenant entities.Tenant) (entities.Tenant, error) {
				if tenant.Active {
					t.Fatalf("update must not reactivate a tenant")
				}
				if tenant.LegalName != "ITL Norte" {
					t.Fatalf("legal name not updated: %+v", tenant)
				}
				return tenant, nil
			},
		)

		_, err := uc.Update(context.Background(), entities.Tenant{ID: "ten-1", LegalName: "ITL Norte", TaxID: "11222333000144", Active: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deactivate is a soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", LegalName: "ITL Centro", TaxID: "11222333000144", Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tenant entities.Tenant) (entities.Tenant, error) {
				if tenant.Active {
					t.Fatalf("deactivate must clear active flag")
				}
				return tenant, nil
			},
		)

		res, err := uc.Deactivate(context.Background(), "ten-1")
		if err != nil || res.Active {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
