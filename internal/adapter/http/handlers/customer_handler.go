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

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerPayload):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
