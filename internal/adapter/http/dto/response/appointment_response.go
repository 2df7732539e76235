package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"
)

type AppointmentResponse struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	CustomerID       string    `json:"customer_id"`
	VehicleID        string    `json:"vehicle_id"`
	InspectionTypeID string    `json:"inspection_type_id"`
	InspectionScope  string    `json:"inspection_scope,omitempty"`
	BillingCompanyID string    `json:"billing_company_id,omitempty"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:               a.ID,
		TenantID:         a.TenantID,
		CustomerID:       a.CustomerID,
		VehicleID:        a.VehicleID,
		InspectionTypeID: a.InspectionTypeID,
		InspectionScope:  a.InspectionScope,
		BillingCompanyID: a.BillingCompanyID,
		ScheduledAt:      a.ScheduledAt,
		Status:           string(a.Status),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}

// AppointmentAggregateResponse is the joined read-model. Sub-entities absent
// from storage are omitted rather than failing the whole view.
type AppointmentAggregateResponse struct {
	Appointment    AppointmentResponse     `json:"appointment"`
	Tenant         *TenantResponse         `json:"tenant,omitempty"`
	Customer       *CustomerResponse       `json:"customer,omitempty"`
	Vehicle        *VehicleResponse        `json:"vehicle,omitempty"`
	InspectionType *InspectionTypeResponse `json:"inspection_type,omitempty"`
	LatestPayment  *PaymentResponse        `json:"latest_payment,omitempty"`
	HasReport      bool                    `json:"has_report"`
}

func FromAppointmentAggregate(agg entities.AppointmentAggregate) AppointmentAggregateResponse {
	out := AppointmentAggregateResponse{
		Appointment: FromAppointment(agg.Appointment),
		HasReport:   agg.HasReport,
	}
	if agg.Tenant != nil {
		t := FromTenant(*agg.Tenant)
		out.Tenant = &t
	}
	if agg.Customer != nil {
		c := FromCustomer(*agg.Customer)
		out.Customer = &c
	}
	if agg.Vehicle != nil {
		v := FromVehicle(*agg.Vehicle)
		out.Vehicle = &v
	}
	if agg.InspectionType != nil {
		it := FromInspectionType(*agg.InspectionType)
		out.InspectionType = &it
	}
	if agg.LatestPayment != nil {
		p := FromPayment(*agg.LatestPayment)
		out.LatestPayment = &p
	}
	return out
}

type ImportRowErrorResponse struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResultResponse is the partial-success accounting of a bulk import.
type ImportResultResponse struct {
	Success int                      `json:"success"`
	Total   int                      `json:"total"`
	Errors  []ImportRowErrorResponse `json:"errors"`
}

func FromImportResult(r usecase.ImportResult) ImportResultResponse {
	errs := make([]ImportRowErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, ImportRowErrorResponse{Row: e.Row, Error: e.Error})
	}
	return ImportResultResponse{
		Success: r.Success,
		Total:   r.Total,
		Errors:  errs,
	}
}
