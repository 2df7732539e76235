package usecase

import (
	"context"
	"errors"
	"testing"

	"vistoria_itl/internal/domain/entities"
	mock_interfaces "vistoria_itl/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPricingUseCase_ResolvePrice_Validations(t *testing.T) {
	t.Run("empty tenant id", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil)
		_, err := uc.ResolvePrice(context.Background(), "  ", "it-1")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("empty inspection type id", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil)
		_, err := uc.ResolvePrice(context.Background(), "ten-1", " ")
		if !errors.Is(err, ErrInvalidInspectionTypeID) {
			t.Fatalf("expected ErrInvalidInspectionTypeID, got %v", err)
		}
	})

	t.Run("tenant not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewPricingUseCase(tenantRepo, nil, nil)

		tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{}, nil)

		_, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("inactive type not resolvable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
		typeRepo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		uc := NewPricingUseCase(tenantRepo, typeRepo, nil)

		tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1"}, nil)
		typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1", Active: false}, nil)

		_, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if !errors.Is(err, ErrInspectionTypeNotFound) {
			t.Fatalf("expected ErrInspectionTypeNotFound, got %v", err)
		}
	})
}

func TestPricingUseCase_ResolvePrice_Resolution(t *testing.T) {
	it := entities.InspectionType{ID: "it-1", Active: true, BasePriceCents: 10000, MaxVarianceCents: 1500}

	newUC := func(ctrl *gomock.Controller, override entities.InspectionTypePricing) *PricingUseCase {
		tenantRepo := mock_interfaces.NewMockITenantRepository(ctrl)
		typeRepo := mock_interfaces.NewMockIInspectionTypeRepository(ctrl)
		pricingRepo := mock_interfaces.NewMockIPricingRepository(ctrl)
		tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1"}, nil)
		typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(it, nil)
		pricingRepo.EXPECT().GetByTenantAndType(gomock.Any(), "ten-1", "it-1").Return(override, nil)
		return NewPricingUseCase(tenantRepo, typeRepo, pricingRepo)
	}

	t.Run("no override falls back to base", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newUC(ctrl, entities.InspectionTypePricing{})

		price, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if err != nil || price != 10000 {
			t.Fatalf("expected base price 10000, got %d err=%v", price, err)
		}
	})

	t.Run("override within variance wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newUC(ctrl, entities.InspectionTypePricing{ID: "ten-1#it-1", PriceCents: 11500})

		price, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if err != nil || price != 11500 {
			t.Fatalf("expected override 11500, got %d err=%v", price, err)
		}
	})

	t.Run("override below base within variance wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newUC(ctrl, entities.InspectionTypePricing{ID: "ten-1#it-1", PriceCents: 8500})

		price, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if err != nil || price != 8500 {
			t.Fatalf("expected override 8500, got %d err=%v", price, err)
		}
	})

	t.Run("out-of-variance override ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newUC(ctrl, entities.InspectionTypePricing{ID: "ten-1#it-1", PriceCents: 11501})

		price, err := uc.ResolvePrice(context.Background(), "ten-1", "it-1")
		if err != nil || price != 10000 {
			t.Fatalf("expected fallback to base 10000, got %d err=%v", price, err)
		}
	})
}
