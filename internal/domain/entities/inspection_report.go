package entities

import "time"

// PhotoSlot names one of the four mandatory photographic-evidence slots of a
// laudo. All four must be populated before PDF generation.

type PhotoSlot string

const (
	PhotoSlotFront     PhotoSlot = "front"
	PhotoSlotRear      PhotoSlot = "rear"
	PhotoSlotPlate     PhotoSlot = "plate"
	PhotoSlotPanoramic PhotoSlot = "panoramic"
)

// RequiredPhotoSlots lists every slot a laudo must carry, in render order.
var RequiredPhotoSlots = []PhotoSlot{
	PhotoSlotFront,
	PhotoSlotRear,
	PhotoSlotPlate,
	PhotoSlotPanoramic,
}

// InspectionReport is the official laudo produced for a realized appointment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (appointment_id-index): appointment_id
//
// At most one report exists per appointment. Photos maps slot name to the
// stored artifact path; PDFPath is set once generation succeeds.

type InspectionReport struct {
	ID                 string               `json:"id"`
	AppointmentID      string               `json:"appointment_id"`
	OrgaoID            string               `json:"orgao_id,omitempty"`
	ReportNumber       string               `json:"report_number"`
	TechnicianName     string               `json:"technician_name"`
	TechnicianRegistry string               `json:"technician_registry,omitempty"`
	ValidUntil         time.Time            `json:"valid_until"`
	Photos             map[PhotoSlot]string `json:"photos,omitempty"`
	PDFPath            string               `json:"pdf_path,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// LaudoDocument is the fully joined model handed to the PDF renderer.
// PhotoFiles carries the raw image bytes for each populated slot.

type LaudoDocument struct {
	Report         InspectionReport
	Appointment    Appointment
	Tenant         Tenant
	Customer       Customer
	Vehicle        Vehicle
	InspectionType InspectionType
	Orgao          IssuingBody
	PhotoFiles     map[PhotoSlot][]byte
}

// MissingPhotoSlots returns the required slots not yet populated.
func (r InspectionReport) MissingPhotoSlots() []PhotoSlot {
	var missing []PhotoSlot
	for _, slot := range RequiredPhotoSlots {
		if r.Photos[slot] == "" {
			missing = append(missing, slot)
		}
	}
	return missing
}
