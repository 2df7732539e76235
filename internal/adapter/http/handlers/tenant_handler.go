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

var errInvalidTenantPayload = pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)

// TenantHandler handles HTTP requests for ITL management.

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

func (h *TenantHandler) Create(c *gin.Context) {
	var payload request.TenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tenant][handler] created tenant_id=%s", tenant.ID)

	c.JSON(http.StatusCreated, response.FromTenant(tenant))
}

func (h *TenantHandler) GetByID(c *gin.Context) {
	tenant, err := h.usecase.GetByID(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

func (h *TenantHandler) Update(c *gin.Context) {
	var payload request.TenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant := payload.ToEntity()
	tenant.ID = c.Param("tenant_id")

	updated, err := h.usecase.Update(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(updated))
}

// Deactivate is the delete path. Tenants referenced by appointments are
// soft-deactivated, never removed.
func (h *TenantHandler) Deactivate(c *gin.Context) {
	tenant, err := h.usecase.Deactivate(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tenant][handler] deactivated tenant_id=%s", tenant.ID)

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func mapTenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantPayload):
		return pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
