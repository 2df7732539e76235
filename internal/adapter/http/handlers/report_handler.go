package handlers

import (
	"errors"
	"log"
	"net/http"

	request "vistoria_itl/internal/adapter/http/dto/request"
	response "vistoria_itl/internal/adapter/http/dto/response"
	"vistoria_itl/internal/usecase"
	"vistoria_itl/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler handles laudo creation, photo evidence uploads and PDF
// generation.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Create opens the laudo for a realized appointment. At most one laudo
// exists per appointment.
func (h *ReportHandler) Create(c *gin.Context) {
	appointmentID := c.Param("appointment_id")

	var payload request.ReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.Create(c.Request.Context(), sessionFromRequest(c), appointmentID, payload.ToMetadata())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] created report_id=%s appointment_id=%s", report.ID, appointmentID)

	c.JSON(http.StatusCreated, response.FromInspectionReport(report))
}

func (h *ReportHandler) GetByAppointmentID(c *gin.Context) {
	report, err := h.usecase.GetByAppointmentID(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionReport(report))
}

// UploadPhotos stores one or more base64 evidence photos into their slots.
// Re-uploading a slot replaces its previous content.
func (h *ReportHandler) UploadPhotos(c *gin.Context) {
	reportID := c.Param("report_id")

	var payload request.ReportPhotosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.UploadPhotos(c.Request.Context(), reportID, payload.ToUploads())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] photos uploaded report_id=%s count=%d", reportID, len(payload.Photos))

	c.JSON(http.StatusOK, response.FromInspectionReport(report))
}

// GeneratePDF renders the laudo once all four photo slots are populated.
func (h *ReportHandler) GeneratePDF(c *gin.Context) {
	reportID := c.Param("report_id")

	pdfPath, err := h.usecase.GeneratePDF(c.Request.Context(), reportID)
	if err != nil {
		log.Printf("[report][handler] pdf generation failed report_id=%s err=%v", reportID, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] pdf generated report_id=%s path=%s", reportID, pdfPath)

	c.JSON(http.StatusOK, response.LaudoPDFResponse{PDFPath: pdfPath})
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportPayload), errors.Is(err, usecase.ErrInvalidPhotoPayload):
		return pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("TENANT_ACCESS_DENIED", "Actor cannot operate on this tenant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Inspection report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportAlreadyExists):
		return pkg.NewDomainErrorSimple("REPORT_ALREADY_EXISTS", "Appointment already has an inspection report", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotDone):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_REALIZED", "Appointment is not realized yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingPhotos):
		return pkg.NewDomainErrorSimple("MISSING_PHOTOS", "All four photo slots must be populated before PDF generation", http.StatusConflict)
	case errors.Is(err, usecase.ErrIssuingBodyRequired):
		return pkg.NewDomainErrorSimple("ORGAO_REQUIRED", "An issuing body must be chosen for this report", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoIssuingBody):
		return pkg.NewDomainErrorSimple("ORGAO_CATALOG_EMPTY", "No issuing body is configured on the platform", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
