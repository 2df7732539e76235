package request

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

// AppointmentRequest is the payload for creating or updating an appointment.
// ScheduledAt is RFC3339.
type AppointmentRequest struct {
	TenantID         string    `json:"tenant_id" binding:"required"`
	CustomerID       string    `json:"customer_id" binding:"required"`
	VehicleID        string    `json:"vehicle_id" binding:"required"`
	InspectionTypeID string    `json:"inspection_type_id" binding:"required"`
	InspectionScope  string    `json:"inspection_scope"`
	BillingCompanyID string    `json:"billing_company_id"`
	ScheduledAt      time.Time `json:"scheduled_at" binding:"required"`
	Notes            string    `json:"notes"`
}

func (r AppointmentRequest) ToEntity() entities.Appointment {
	return entities.Appointment{
		TenantID:         r.TenantID,
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		InspectionTypeID: r.InspectionTypeID,
		InspectionScope:  r.InspectionScope,
		BillingCompanyID: r.BillingCompanyID,
		ScheduledAt:      r.ScheduledAt,
		Notes:            r.Notes,
	}
}

// AppointmentImportRequest carries a base64-encoded XLSX plus the explicit
// column-to-field mapping (spreadsheet header name per appointment field).
type AppointmentImportRequest struct {
	FileBase64 string            `json:"file_base64" binding:"required"`
	Mapping    map[string]string `json:"mapping" binding:"required"`
}
