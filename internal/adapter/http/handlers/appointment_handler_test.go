package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vistoria_itl/internal/adapter/http/handlers/mocks"
	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAppointmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/appointments", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inactive tenant conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/appointments", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Appointment{}, usecase.ErrTenantInactive)

		body := `{"tenant_id":"ten-1","customer_id":"cus-1","vehicle_id":"veh-1","inspection_type_id":"it-1","scheduled_at":"2026-04-10T09:30:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/appointments", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, a entities.Appointment) (entities.Appointment, error) {
				if a.TenantID != "ten-1" || a.ScheduledAt.IsZero() {
					t.Fatalf("payload not bound: %+v", a)
				}
				a.ID = "app-1"
				a.Status = entities.AppointmentStatusPendente
				return a, nil
			},
		)

		body := `{"tenant_id":"ten-1","customer_id":"cus-1","vehicle_id":"veh-1","inspection_type_id":"it-1","scheduled_at":"2026-04-10T09:30:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.AppointmentStatusPendente) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAppointmentHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/appointments/:appointment_id/confirm", h.Confirm)

		uc.EXPECT().Confirm(gomock.Any(), gomock.Any(), "app-1").Return(entities.Appointment{ID: "app-1", Status: entities.AppointmentStatusConfirmado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/app-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/appointments/:appointment_id/realize", h.Realize)

		uc.EXPECT().Realize(gomock.Any(), gomock.Any(), "app-1").Return(entities.Appointment{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/app-1/realize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel denied for foreign tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/appointments/:appointment_id/cancel", h.Cancel)

		uc.EXPECT().Cancel(gomock.Any(), entities.Session{ActorID: "op-1", TenantID: "ten-2", Role: entities.RoleTenant}, "app-1").Return(entities.Appointment{}, usecase.ErrTenantAccessDenied)

		req := httptest.NewRequest(http.MethodPatch, "/v1/appointments/app-1/cancel", nil)
		req.Header.Set(HeaderActorID, "op-1")
		req.Header.Set(HeaderTenantID, "ten-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_GetAggregate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAppointmentUseCase(ctrl)
	h := NewAppointmentHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/appointments/:appointment_id/aggregate", h.GetAggregate)

	agg := entities.AppointmentAggregate{
		Appointment:   entities.Appointment{ID: "app-1", TenantID: "ten-1", Status: entities.AppointmentStatusConfirmado, ScheduledAt: time.Now().UTC()},
		Tenant:        &entities.Tenant{ID: "ten-1", LegalName: "ITL Centro"},
		LatestPayment: &entities.Payment{ID: "pay-1", Status: entities.PaymentStatusAprovado},
		HasReport:     true,
	}
	uc.EXPECT().GetAggregate(gomock.Any(), "app-1").Return(agg, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments/app-1/aggregate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["has_report"] != true {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if resp["customer"] != nil {
		t.Fatalf("absent sub-entities must be omitted: %s", w.Body.String())
	}
}

func TestAppointmentHandler_Import(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid mapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		importer := mocks.NewMockIImportUseCase(ctrl)
		h := NewAppointmentHandler(uc, importer)

		r := gin.New()
		r.POST("/v1/appointments/import", h.Import)

		importer.EXPECT().ImportAppointments(gomock.Any(), gomock.Any(), "ZmlsZQ==", gomock.Any()).Return(usecase.ImportResult{}, usecase.ErrInvalidImportMapping)

		body := `{"file_base64":"ZmlsZQ==","mapping":{"tenant_id":"Tenant"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/import", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial success reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		importer := mocks.NewMockIImportUseCase(ctrl)
		h := NewAppointmentHandler(uc, importer)

		r := gin.New()
		r.POST("/v1/appointments/import", h.Import)

		importer.EXPECT().ImportAppointments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ImportResult{
			Success: 2,
			Total:   3,
			Errors:  []usecase.ImportRowError{{Row: 4, Error: "missing scheduled_at"}},
		}, nil)

		body := `{"file_base64":"ZmlsZQ==","mapping":{"tenant_id":"Tenant","customer_id":"Customer","vehicle_id":"Vehicle","inspection_type_id":"Type","scheduled_at":"Date"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/import", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["success"] != float64(2) || resp["total"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
