package response

import (
	"testing"
	"time"

	"vistoria_itl/internal/domain/entities"
)

func TestFromInspectionReport(t *testing.T) {
	now := time.Now().UTC()
	r := entities.InspectionReport{
		ID:             "app-1",
		AppointmentID:  "app-1",
		ReportNumber:   "LV-2026-0001",
		TechnicianName: "Joana Prado",
		ValidUntil:     now.AddDate(1, 0, 0),
		Photos: map[entities.PhotoSlot]string{
			entities.PhotoSlotFront: "reports/app-1/front_f.jpg",
			entities.PhotoSlotPlate: "reports/app-1/plate_p.jpg",
		},
	}

	res := FromInspectionReport(r)
	if res.ID != "app-1" || res.ReportNumber != "LV-2026-0001" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Photos["front"] != "reports/app-1/front_f.jpg" {
		t.Fatalf("unexpected photos: %+v", res.Photos)
	}
	if len(res.MissingPhotoSlots) != 2 {
		t.Fatalf("expected 2 missing slots, got %v", res.MissingPhotoSlots)
	}

	full := r
	full.Photos = map[entities.PhotoSlot]string{}
	for _, slot := range entities.RequiredPhotoSlots {
		full.Photos[slot] = "reports/app-1/" + string(slot) + ".jpg"
	}
	full.PDFPath = "reports/app-1/laudo.pdf"

	resFull := FromInspectionReport(full)
	// Populated reports must report an empty array, never null.
	if resFull.MissingPhotoSlots == nil || len(resFull.MissingPhotoSlots) != 0 {
		t.Fatalf("expected no missing slots, got %v", resFull.MissingPhotoSlots)
	}
	if resFull.PDFPath != "reports/app-1/laudo.pdf" {
		t.Fatalf("pdf path lost: %+v", resFull)
	}
}
