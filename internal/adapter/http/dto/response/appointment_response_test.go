package response

import (
	"testing"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"
)

func TestFromAppointmentAggregate(t *testing.T) {
	now := time.Now().UTC()
	agg := entities.AppointmentAggregate{
		Appointment: entities.Appointment{
			ID:               "app-1",
			TenantID:         "ten-1",
			CustomerID:       "cus-1",
			VehicleID:        "veh-1",
			InspectionTypeID: "it-1",
			ScheduledAt:      now,
			Status:           entities.AppointmentStatusConfirmado,
		},
		Tenant:        &entities.Tenant{ID: "ten-1", LegalName: "ITL Centro"},
		LatestPayment: &entities.Payment{ID: "pay-1", AmountCents: 12000, Status: entities.PaymentStatusAprovado},
		HasReport:     true,
	}

	res := FromAppointmentAggregate(agg)
	if res.Appointment.ID != "app-1" || res.Appointment.Status != "confirmado" {
		t.Fatalf("unexpected appointment view: %+v", res.Appointment)
	}
	if res.Tenant == nil || res.Tenant.LegalName != "ITL Centro" {
		t.Fatalf("unexpected tenant view: %+v", res.Tenant)
	}
	if res.Customer != nil || res.Vehicle != nil || res.InspectionType != nil {
		t.Fatalf("absent sub-entities must stay nil: %+v", res)
	}
	if res.LatestPayment == nil || res.LatestPayment.AmountCents != 12000 {
		t.Fatalf("unexpected payment view: %+v", res.LatestPayment)
	}
	if !res.HasReport {
		t.Fatalf("report flag lost")
	}
}

func TestFromImportResult(t *testing.T) {
	res := FromImportResult(usecase.ImportResult{Success: 2, Total: 3, Errors: nil})
	if res.Success != 2 || res.Total != 3 {
		t.Fatalf("unexpected accounting: %+v", res)
	}
	// nil errors must serialize as an empty array, not null.
	if res.Errors == nil || len(res.Errors) != 0 {
		t.Fatalf("expected empty error slice, got %v", res.Errors)
	}

	withErr := FromImportResult(usecase.ImportResult{Total: 1, Errors: []usecase.ImportRowError{{Row: 2, Error: "missing scheduled_at"}}})
	if len(withErr.Errors) != 1 || withErr.Errors[0].Row != 2 {
		t.Fatalf("unexpected errors: %+v", withErr.Errors)
	}
}
