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

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) ListByCustomer(c *gin.Context) {
	vehicles, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehiclePayload):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
