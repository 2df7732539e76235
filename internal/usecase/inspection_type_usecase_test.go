package usecase

import (
	"context"
	"errors"
	"testing"

	"vistoria_itl/internal/domain/entities"
	mock_interfaces "vistoria_itl/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInspectionTypeUseCase_CreateAndList(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewInspectionTypeUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.InspectionType{Name: "  ", BasePriceCents: 100})
		if !errors.Is(err, ErrInvalidInspectionTypePayload) {
			t.Fatalf("expected ErrInvalidInspectionTypePayload, got %v", err)
		}
	})

	t.Run("negative base price", func(t *testing.T) {
		uc := NewInspectionTypeUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.InspectionType{Name: "Cautelar", BasePriceCents: -1})
		if !errors.Is(err, ErrInvalidInspectionTypePayload) {
			t.Fatalf("expected ErrInvalidInspectionTypePayload, got %v", err)
		}
	})

	t.Run("create starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		uc := NewInspectionTypeUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InspectionType{})).DoAndReturn(
			func(_ context.Context, it entities.InspectionType) (entities.InspectionType, error) {
				if it.ID == "" || !it.Active {
					t.Fatalf("new type must have id and be active: %+v", it)
				}
				return it, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.InspectionType{Name: "Cautelar", BasePriceCents: 10000, MaxVarianceCents: 1000})
		if err != nil || !res.Active {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("list filters inactive when asked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		uc := NewInspectionTypeUseCase(repo, nil, nil)

		all := []entities.InspectionType{
			{ID: "it-1", Active: true},
			{ID: "it-2", Active: false},
			{ID: "it-3", Active: true},
		}
		repo.EXPECT().List(gomock.Any()).Return(all, nil).Times(2)

		full, err := uc.List(context.Background(), false)
		if err != nil || len(full) != 3 {
			t.Fatalf("unexpected full list err=%v len=%d", err, len(full))
		}
		active, err := uc.List(context.Background(), true)
		if err != nil || len(active) != 2 {
			t.Fatalf("unexpected active list err=%v len=%d", err, len(active))
		}
	})

	t.Run("deactivate keeps the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		uc := NewInspectionTypeUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1", Name: "Cautelar", Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.InspectionType{})).DoAndReturn(
			func(_ context.Context, it entities.InspectionType) (entities.InspectionType, error) {
				if it.Active {
					t.Fatalf("deactivate must clear active flag")
				}
				return it, nil
			},
		)

		if _, err := uc.Deactivate(context.Background(), "it-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInspectionTypeUseCase_SetTenantPrice(t *testing.T) {
	it := entities.InspectionType{ID: "it-1", Name: "Cautelar", Active: true, BasePriceCents: 10000, MaxVarianceCents: 1500}

	t.Run("tenant not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewInspectionTypeUseCase(nil, tenantRepo, nil)

		tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{}, nil)

		_, err := uc.SetTenantPrice(context.Background(), "ten-1", "it-1", 10000)
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("out of variance rejected at write time", func(t *testing.T) {
		cases := []struct {
			name  string
			price int64
		}{
			{name: "above ceiling", price: 11501},
			{name: "below floor", price: 8499},
			{name: "negative", price: -1},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
				tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
				uc := NewInspectionTypeUseCase(repo, tenantRepo, nil)

				tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1"}, nil)
				repo.EXPECT().GetByID(gomock.Any(), "it-1").Return(it, nil)

				_, err := uc.SetTenantPrice(context.Background(), "ten-1", "it-1", tc.price)
				if !errors.Is(err, ErrPriceOutOfVariance) {
					t.Fatalf("expected ErrPriceOutOfVariance, got %v", err)
				}
			})
		}
	})

	t.Run("boundary price accepted with deterministic key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
		pricingRepo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewInspectionTypeUseCase(repo, tenantRepo, pricingRepo)

		tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "it-1").Return(it, nil)
		pricingRepo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.InspectionTypePricing{})).DoAndReturn(
			func(_ context.Context, p entities.InspectionTypePricing) (entities.InspectionTypePricing, error) {
				if p.ID != "ten-1#it-1" {
					t.Fatalf("expected deterministic pricing key, got %q", p.ID)
				}
				if p.PriceCents != 11500 {
					t.Fatalf("unexpected price: %d", p.PriceCents)
				}
				return p, nil
			},
		)

		res, err := uc.SetTenantPrice(context.Background(), "ten-1", "it-1", 11500)
		if err != nil || res.PriceCents != 11500 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("remove delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pricingRepo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewInspectionTypeUseCase(nil, nil, pricingRepo)

		pricingRepo.EXPECT().DeleteByTenantAndType(gomock.Any(), "ten-1", "it-1").Return(nil)

		if err := uc.RemoveTenantPrice(context.Background(), " ten-1 ", " it-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
