package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "vistoria_itl/internal/adapter/http/dto/request"
	response "vistoria_itl/internal/adapter/http/dto/response"
	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"
	"vistoria_itl/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)

// AppointmentHandler handles scheduling requests, the aggregate read-model
// and the bulk spreadsheet import.

type AppointmentHandler struct {
	usecase  usecase.IAppointmentUseCase
	importer usecase.IImportUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase, importer usecase.IImportUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc, importer: importer}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), sessionFromRequest(c), payload.ToEntity())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[appointment][handler] created appointment_id=%s tenant_id=%s", created.ID, created.TenantID)

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	appointment, err := h.usecase.GetByID(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(appointment))
}

// GetAggregate returns the joined read-model. Missing sub-entities are
// omitted from the view, never an error.
func (h *AppointmentHandler) GetAggregate(c *gin.Context) {
	agg, err := h.usecase.GetAggregate(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointmentAggregate(agg))
}

func (h *AppointmentHandler) ListByTenant(c *gin.Context) {
	appointments, err := h.usecase.ListByTenant(c.Request.Context(), sessionFromRequest(c), c.Param("tenant_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	appointment := payload.ToEntity()
	appointment.ID = c.Param("appointment_id")

	updated, err := h.usecase.Update(c.Request.Context(), sessionFromRequest(c), appointment)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.patchStatus(c, h.usecase.Confirm)
}

func (h *AppointmentHandler) Realize(c *gin.Context) {
	h.patchStatus(c, h.usecase.Realize)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *AppointmentHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, session entities.Session, id string) (entities.Appointment, error),
) {
	updated, err := updater(c.Request.Context(), sessionFromRequest(c), c.Param("appointment_id"))
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[appointment][handler] status change appointment_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

// Import accepts a base64 XLSX plus a column mapping and creates appointments
// row by row. Row failures are reported, never fatal for the batch.
func (h *AppointmentHandler) Import(c *gin.Context) {
	var payload request.AppointmentImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.importer.ImportAppointments(c.Request.Context(), sessionFromRequest(c), payload.FileBase64, payload.Mapping)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[appointment][handler] import done success=%d total=%d errors=%d", result.Success, result.Total, len(result.Errors))

	c.JSON(http.StatusOK, response.FromImportResult(result))
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentPayload):
		return pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("TENANT_ACCESS_DENIED", "Actor cannot operate on this tenant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionTypeNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_TYPE_NOT_FOUND", "Inspection type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantInactive):
		return pkg.NewDomainErrorSimple("TENANT_INACTIVE", "Tenant is inactive", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid appointment status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentImmutable):
		return pkg.NewDomainErrorSimple("APPOINTMENT_IMMUTABLE", "Appointment is in a terminal status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportFile), errors.Is(err, usecase.ErrInvalidImportMapping), errors.Is(err, usecase.ErrEmptyImportFile):
		return pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
