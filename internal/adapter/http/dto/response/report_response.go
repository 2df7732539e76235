package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
)

type InspectionReportResponse struct {
	ID                 string            `json:"id"`
	AppointmentID      string            `json:"appointment_id"`
	OrgaoID            string            `json:"orgao_id,omitempty"`
	ReportNumber       string            `json:"report_number"`
	TechnicianName     string            `json:"technician_name"`
	TechnicianRegistry string            `json:"technician_registry,omitempty"`
	ValidUntil         time.Time         `json:"valid_until"`
	Photos             map[string]string `json:"photos"`
	MissingPhotoSlots  []string          `json:"missing_photo_slots"`
	PDFPath            string            `json:"pdf_path,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func FromInspectionReport(r entities.InspectionReport) InspectionReportResponse {
	photos := make(map[string]string, len(r.Photos))
	for slot, path := range r.Photos {
		photos[string(slot)] = path
	}
	missing := []string{}
	for _, slot := range r.MissingPhotoSlots() {
		missing = append(missing, string(slot))
	}
	return InspectionReportResponse{
		ID:                 r.ID,
		AppointmentID:      r.AppointmentID,
		OrgaoID:            r.OrgaoID,
		ReportNumber:       r.ReportNumber,
		TechnicianName:     r.TechnicianName,
		TechnicianRegistry: r.TechnicianRegistry,
		ValidUntil:         r.ValidUntil,
		Photos:             photos,
		MissingPhotoSlots:  missing,
		PDFPath:            r.PDFPath,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// LaudoPDFResponse points at the generated artifact, served under /content.
type LaudoPDFResponse struct {
	PDFPath string `json:"pdf_path"`
}
