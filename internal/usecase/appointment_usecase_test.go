package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vistoria_itl/internal/domain/entities"
	mock_interfaces "vistoria_itl/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type appointmentMocks struct {
	repo         *mock_interfaces.MockIAppointmentRepository
	tenantRepo   *mock_interfaces.MockITenantRepository
	customerRepo *mock_interfaces.MockICustomerRepository
	vehicleRepo  *mock_interfaces.MockIVehicleRepository
	typeRepo     *mock_interfaces.MockIInspectionTypeRepository
	paymentRepo  *mock_interfaces.MockIPaymentRepository
	reportRepo   *mock_interfaces.MockIInspectionReportRepository
}

func newAppointmentUC(ctrl *gomock.Controller) (*AppointmentUseCase, appointmentMocks) {
	m := appointmentMocks{
		repo:         mock_interfaces.NewMockIAppointmentRepository(ctrl),
		tenantRepo:   mock_interfaces.NewMockITenantRepository(ctrl),
		customerRepo: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicleRepo:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		typeRepo:     mock_interfaces.NewMockIInspectionTypeRepository(ctrl),
		paymentRepo:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		reportRepo:   mock_interfaces.NewMockIInspectionReportRepository(ctrl),
	}
	uc := NewAppointmentUseCase(m.repo, m.tenantRepo, m.customerRepo, m.vehicleRepo, m.typeRepo, m.paymentRepo, m.reportRepo)
	return uc, m
}

func validAppointment() entities.Appointment {
	return entities.Appointment{
		TenantID:         "ten-1",
		CustomerID:       "cus-1",
		VehicleID:        "veh-1",
		InspectionTypeID: "it-1",
		ScheduledAt:      time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		a := validAppointment()
		a.VehicleID = "  "
		_, err := uc.Create(context.Background(), adminSession, a)
		if !errors.Is(err, ErrInvalidAppointmentPayload) {
			t.Fatalf("expected ErrInvalidAppointmentPayload, got %v", err)
		}
	})

	t.Run("zero scheduled_at", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		a := validAppointment()
		a.ScheduledAt = time.Time{}
		_, err := uc.Create(context.Background(), adminSession, a)
		if !errors.Is(err, ErrInvalidAppointmentPayload) {
			t.Fatalf("expected ErrInvalidAppointmentPayload, got %v", err)
		}
	})

	t.Run("tenant session cannot create for another tenant", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		session := entities.Session{ActorID: "op-1", TenantID: "ten-2", Role: entities.RoleTenant}
		_, err := uc.Create(context.Background(), session, validAppointment())
		if !errors.Is(err, ErrTenantAccessDenied) {
			t.Fatalf("expected ErrTenantAccessDenied, got %v", err)
		}
	})

	t.Run("inactive tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", Active: false}, nil)

		_, err := uc.Create(context.Background(), adminSession, validAppointment())
		if !errors.Is(err, ErrTenantInactive) {
			t.Fatalf("expected ErrTenantInactive, got %v", err)
		}
	})

	t.Run("dangling customer reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", Active: true}, nil)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), adminSession, validAppointment())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("inactive inspection type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", Active: true}, nil)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1", Active: false}, nil)

		_, err := uc.Create(context.Background(), adminSession, validAppointment())
		if !errors.Is(err, ErrInspectionTypeNotFound) {
			t.Fatalf("expected ErrInspectionTypeNotFound, got %v", err)
		}
	})

	t.Run("success starts pendente with generated id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", Active: true}, nil)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1", Active: true}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID == "" {
					t.Fatalf("id must be generated")
				}
				if a.Status != entities.AppointmentStatusPendente {
					t.Fatalf("new appointment must be pendente, got %s", a.Status)
				}
				if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
					t.Fatalf("timestamps must be set")
				}
				return a, nil
			},
		)

		res, err := uc.Create(context.Background(), adminSession, validAppointment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.AppointmentStatusPendente {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})
}

func TestAppointmentUseCase_GetAggregate(t *testing.T) {
	t.Run("not found propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Appointment{}, nil)

		_, err := uc.GetAggregate(context.Background(), "app-1")
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("best-effort join tolerates missing sub-entities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		a := entities.Appointment{ID: "app-1", TenantID: "ten-1", CustomerID: "cus-1", VehicleID: "veh-1", InspectionTypeID: "it-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(a, nil)
		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1", LegalName: "ITL Centro"}, nil)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, errors.New("db"))
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)
		m.typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1"}, nil)
		m.paymentRepo.EXPECT().ListByAppointmentID(gomock.Any(), "app-1").Return(nil, nil)
		m.reportRepo.EXPECT().GetByAppointmentID(gomock.Any(), "app-1").Return(entities.InspectionReport{}, nil)

		agg, err := uc.GetAggregate(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.Tenant == nil || agg.Tenant.LegalName != "ITL Centro" {
			t.Fatalf("tenant should be joined: %+v", agg.Tenant)
		}
		if agg.Customer != nil || agg.Vehicle != nil {
			t.Fatalf("failed or empty sub-reads must stay nil")
		}
		if agg.LatestPayment != nil || agg.HasReport {
			t.Fatalf("no payment or report expected: %+v", agg)
		}
	})

	t.Run("joins latest payment and report flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		a := entities.Appointment{ID: "app-1", TenantID: "ten-1", CustomerID: "cus-1", VehicleID: "veh-1", InspectionTypeID: "it-1"}
		base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(a, nil)
		m.tenantRepo.EXPECT().GetByID(gomock.Any(), "ten-1").Return(entities.Tenant{ID: "ten-1"}, nil)
		m.customerRepo.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		m.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)
		m.typeRepo.EXPECT().GetByID(gomock.Any(), "it-1").Return(entities.InspectionType{ID: "it-1"}, nil)
		m.paymentRepo.EXPECT().ListByAppointmentID(gomock.Any(), "app-1").Return([]entities.Payment{
			{ID: "pay-old", CreatedAt: base},
			{ID: "pay-new", CreatedAt: base.Add(2 * time.Hour)},
		}, nil)
		m.reportRepo.EXPECT().GetByAppointmentID(gomock.Any(), "app-1").Return(entities.InspectionReport{ID: "app-1"}, nil)

		agg, err := uc.GetAggregate(context.Background(), "app-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if agg.LatestPayment == nil || agg.LatestPayment.ID != "pay-new" {
			t.Fatalf("expected latest payment pay-new, got %+v", agg.LatestPayment)
		}
		if !agg.HasReport {
			t.Fatalf("expected report flag set")
		}
	})
}

func TestAppointmentUseCase_ListByTenant(t *testing.T) {
	t.Run("access denied", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil, nil, nil, nil, nil)
		session := entities.Session{ActorID: "op-1", TenantID: "ten-2", Role: entities.RoleTenant}
		_, err := uc.ListByTenant(context.Background(), session, "ten-1")
		if !errors.Is(err, ErrTenantAccessDenied) {
			t.Fatalf("expected ErrTenantAccessDenied, got %v", err)
		}
	})

	t.Run("own tenant allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.repo.EXPECT().ListByTenantID(gomock.Any(), "ten-1").Return([]entities.Appointment{{ID: "app-1"}}, nil)

		session := entities.Session{ActorID: "op-1", TenantID: "ten-1", Role: entities.RoleTenant}
		res, err := uc.ListByTenant(context.Background(), session, " ten-1 ")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestAppointmentUseCase_Update(t *testing.T) {
	t.Run("terminal appointment immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Appointment{ID: "app-1", TenantID: "ten-1", Status: entities.AppointmentStatusRealizado}, nil)

		a := validAppointment()
		a.ID = "app-1"
		_, err := uc.Update(context.Background(), adminSession, a)
		if !errors.Is(err, ErrAppointmentImmutable) {
			t.Fatalf("expected ErrAppointmentImmutable, got %v", err)
		}
	})

	t.Run("only scheduling fields change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		current := entities.Appointment{
			ID: "app-1", TenantID: "ten-1", CustomerID: "cus-1", VehicleID: "veh-1",
			InspectionTypeID: "it-1", Status: entities.AppointmentStatusConfirmado,
			ScheduledAt: time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(current, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.TenantID != "ten-1" || a.CustomerID != "cus-1" || a.Status != entities.AppointmentStatusConfirmado {
					t.Fatalf("identity and status must not change: %+v", a)
				}
				if !a.ScheduledAt.Equal(time.Date(2026, 4, 12, 14, 0, 0, 0, time.UTC)) {
					t.Fatalf("scheduled_at not updated: %v", a.ScheduledAt)
				}
				if a.Notes != "reagendado" {
					t.Fatalf("notes not updated")
				}
				return a, nil
			},
		)

		_, err := uc.Update(context.Background(), adminSession, entities.Appointment{
			ID:          "app-1",
			TenantID:    "ten-999",
			ScheduledAt: time.Date(2026, 4, 12, 14, 0, 0, 0, time.UTC),
			Notes:       "reagendado",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAppointmentUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    entities.AppointmentStatus
		call    func(uc *AppointmentUseCase) (entities.Appointment, error)
		to      entities.AppointmentStatus
		wantErr error
	}{
		{
			name: "pendente confirm ok",
			from: entities.AppointmentStatusPendente,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Confirm(context.Background(), adminSession, "app-1")
			},
			to: entities.AppointmentStatusConfirmado,
		},
		{
			name: "confirmado realize ok",
			from: entities.AppointmentStatusConfirmado,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Realize(context.Background(), adminSession, "app-1")
			},
			to: entities.AppointmentStatusRealizado,
		},
		{
			name: "pendente cancel ok",
			from: entities.AppointmentStatusPendente,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Cancel(context.Background(), adminSession, "app-1")
			},
			to: entities.AppointmentStatusCancelado,
		},
		{
			name: "pendente realize rejected",
			from: entities.AppointmentStatusPendente,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Realize(context.Background(), adminSession, "app-1")
			},
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name: "realizado cancel rejected",
			from: entities.AppointmentStatusRealizado,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Cancel(context.Background(), adminSession, "app-1")
			},
			wantErr: ErrInvalidStatusTransition,
		},
		{
			name: "cancelado confirm rejected",
			from: entities.AppointmentStatusCancelado,
			call: func(uc *AppointmentUseCase) (entities.Appointment, error) {
				return uc.Confirm(context.Background(), adminSession, "app-1")
			},
			wantErr: ErrInvalidStatusTransition,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newAppointmentUC(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Appointment{ID: "app-1", TenantID: "ten-1", Status: tc.from}, nil)
			if tc.wantErr == nil {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "app-1", tc.to).Return(entities.Appointment{ID: "app-1", Status: tc.to}, nil)
			}

			res, err := tc.call(uc)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || res.Status != tc.to {
				t.Fatalf("unexpected result err=%v res=%+v", err, res)
			}
		})
	}

	t.Run("transition denied for foreign tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAppointmentUC(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "app-1").Return(entities.Appointment{ID: "app-1", TenantID: "ten-1", Status: entities.AppointmentStatusPendente}, nil)

		session := entities.Session{ActorID: "op-1", TenantID: "ten-2", Role: entities.RoleTenant}
		_, err := uc.Confirm(context.Background(), session, "app-1")
		if !errors.Is(err, ErrTenantAccessDenied) {
			t.Fatalf("expected ErrTenantAccessDenied, got %v", err)
		}
	})
}
