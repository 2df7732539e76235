package handlers

import (
	"errors"
	"net/http"

	request "vistoria_itl/internal/adapter/http/dto/request"
	response "vistoria_itl/internal/adapter/http/dto/response"
	"vistoria_itl/internal/usecase"
	"vistoria_itl/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInspectionTypePayload = pkg.NewDomainErrorSimple("INVALID_INSPECTION_TYPE_INPUT", "Invalid inspection type payload", http.StatusBadRequest)

// InspectionTypeHandler handles the global catalog plus the per-tenant price
// override and price resolution endpoints.

type InspectionTypeHandler struct {
	usecase usecase.IInspectionTypeUseCase
	pricing usecase.IPricingUseCase
}

func NewInspectionTypeHandler(uc usecase.IInspectionTypeUseCase, pricing usecase.IPricingUseCase) *InspectionTypeHandler {
	return &InspectionTypeHandler{usecase: uc, pricing: pricing}
}

func (h *InspectionTypeHandler) Create(c *gin.Context) {
	var payload request.InspectionTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionTypePayload.HTTPStatus, errInvalidInspectionTypePayload.ToHTTPError())
		return
	}

	it, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInspectionType(it))
}

func (h *InspectionTypeHandler) GetByID(c *gin.Context) {
	it, err := h.usecase.GetByID(c.Request.Context(), c.Param("inspection_type_id"))
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionType(it))
}

func (h *InspectionTypeHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	its, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionTypes(its))
}

func (h *InspectionTypeHandler) Update(c *gin.Context) {
	var payload request.InspectionTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionTypePayload.HTTPStatus, errInvalidInspectionTypePayload.ToHTTPError())
		return
	}

	it := payload.ToEntity()
	it.ID = c.Param("inspection_type_id")

	updated, err := h.usecase.Update(c.Request.Context(), it)
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionType(updated))
}

func (h *InspectionTypeHandler) Deactivate(c *gin.Context) {
	it, err := h.usecase.Deactivate(c.Request.Context(), c.Param("inspection_type_id"))
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionType(it))
}

// SetTenantPrice creates or replaces the per-tenant override. The variance
// window is enforced at write time; out-of-window prices are rejected here,
// never silently clamped at read time.
func (h *InspectionTypeHandler) SetTenantPrice(c *gin.Context) {
	var payload request.TenantPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionTypePayload.HTTPStatus, errInvalidInspectionTypePayload.ToHTTPError())
		return
	}

	pricing, err := h.usecase.SetTenantPrice(c.Request.Context(), c.Param("tenant_id"), c.Param("inspection_type_id"), payload.PriceCents)
	if err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricing(pricing))
}

func (h *InspectionTypeHandler) RemoveTenantPrice(c *gin.Context) {
	if err := h.usecase.RemoveTenantPrice(c.Request.Context(), c.Param("tenant_id"), c.Param("inspection_type_id")); err != nil {
		appErr := mapInspectionTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolvePrice returns the effective price for a tenant/type pair: the
// override when present and within variance, the base price otherwise.
func (h *InspectionTypeHandler) ResolvePrice(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	typeID := c.Param("inspection_type_id")

	cents, err := h.pricing.ResolvePrice(c.Request.Context(), tenantID, typeID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ResolvedPriceResponse{
		TenantID:         tenantID,
		InspectionTypeID: typeID,
		PriceCents:       cents,
	})
}

func mapInspectionTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInspectionTypePayload):
		return pkg.NewDomainErrorSimple("INVALID_INSPECTION_TYPE_INPUT", "Invalid inspection type payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceOutOfVariance):
		return pkg.NewDomainErrorSimple("PRICE_OUT_OF_VARIANCE", "Override price outside the allowed variance", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInspectionTypeNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_TYPE_NOT_FOUND", "Inspection type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidInspectionTypeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInspectionTypeNotFound):
		return pkg.NewDomainErrorSimple("INSPECTION_TYPE_NOT_FOUND", "Inspection type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
