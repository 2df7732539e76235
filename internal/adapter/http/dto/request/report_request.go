package request

import (
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"
)

// ReportRequest carries the laudo header supplied at creation time.
type ReportRequest struct {
	ReportNumber       string    `json:"report_number" binding:"required"`
	TechnicianName     string    `json:"technician_name" binding:"required"`
	TechnicianRegistry string    `json:"technician_registry"`
	ValidUntil         time.Time `json:"valid_until" binding:"required"`
	OrgaoID            string    `json:"orgao_id"`
}

func (r ReportRequest) ToMetadata() usecase.ReportMetadata {
	return usecase.ReportMetadata{
		ReportNumber:       r.ReportNumber,
		TechnicianName:     r.TechnicianName,
		TechnicianRegistry: r.TechnicianRegistry,
		ValidUntil:         r.ValidUntil,
		OrgaoID:            r.OrgaoID,
	}
}

// PhotoUploadRequest is one evidence slot submitted as base64 content.
type PhotoUploadRequest struct {
	Slot          string `json:"slot" binding:"required"`
	Filename      string `json:"filename" binding:"required"`
	ContentBase64 string `json:"content_base64" binding:"required"`
}

// ReportPhotosRequest uploads one or more evidence photos in a single call.
type ReportPhotosRequest struct {
	Photos []PhotoUploadRequest `json:"photos" binding:"required"`
}

func (r ReportPhotosRequest) ToUploads() []usecase.PhotoUpload {
	uploads := make([]usecase.PhotoUpload, 0, len(r.Photos))
	for _, p := range r.Photos {
		uploads = append(uploads, usecase.PhotoUpload{
			Slot:          entities.PhotoSlot(p.Slot),
			Filename:      p.Filename,
			ContentBase64: p.ContentBase64,
		})
	}
	return uploads
}
