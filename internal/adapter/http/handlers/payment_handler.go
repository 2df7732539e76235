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

// PaymentHandler handles charge creation and reconciliation against the
// payment processor.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCharge creates a charge for an appointment. The amount is resolved
// server-side from the pricing rules; the body only selects the method.
func (h *PaymentHandler) CreateCharge(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] charge start appointment_id=%s", appointmentID)

	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// An empty body is a valid charge request with the default method.
		payload = request.ChargeRequest{}
	}

	created, err := h.usecase.CreateCharge(c.Request.Context(), sessionFromRequest(c), appointmentID, payload.Method)
	if err != nil {
		log.Printf("[payment][handler] charge failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge created appointment_id=%s payment_id=%s status=%s", appointmentID, created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetByAppointmentID returns the latest payment for an appointment.
func (h *PaymentHandler) GetByAppointmentID(c *gin.Context) {
	appointmentID := c.Param("appointment_id")

	latest, err := h.usecase.GetLatestByAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// Synchronize sweeps every pending payment and reconciles its status with
// the processor. Per-item failures are reported, never fatal for the sweep.
func (h *PaymentHandler) Synchronize(c *gin.Context) {
	result, err := h.usecase.Synchronize(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] sync done total=%d updated=%d unchanged=%d errors=%d", result.Total, result.Updated, result.Unchanged, len(result.Errors))

	c.JSON(http.StatusOK, response.FromSyncResult(result))
}

// SynchronizeOne reconciles a single payment by id.
func (h *PaymentHandler) SynchronizeOne(c *gin.Context) {
	paymentID := c.Param("payment_id")

	payment, updated, err := h.usecase.SynchronizeOne(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] sync-one done payment_id=%s status=%s updated=%t", payment.ID, payment.Status, updated)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeAmount):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_AMOUNT", "Resolved price must be positive to create a charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTenantAccessDenied):
		return pkg.NewDomainErrorSimple("TENANT_ACCESS_DENIED", "Actor cannot operate on this tenant", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentPaid):
		return pkg.NewDomainErrorSimple("APPOINTMENT_ALREADY_PAID", "Appointment already has an approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeInFlight):
		return pkg.NewDomainErrorSimple("CHARGE_IN_FLIGHT", "A charge is already being created for this appointment", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotChargeable):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_CHARGEABLE", "Appointment cannot be charged in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeCreation):
		return pkg.NewDomainErrorSimple("CHARGE_CREATION_FAILED", "Payment processor rejected the charge", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUnknownProviderStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER_STATUS", "Payment processor returned an unknown status", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
