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

// IssuingBodyHandler manages the órgão catalog stamped on laudos.

type IssuingBodyHandler struct {
	usecase usecase.IIssuingBodyUseCase
}

func NewIssuingBodyHandler(uc usecase.IIssuingBodyUseCase) *IssuingBodyHandler {
	return &IssuingBodyHandler{usecase: uc}
}

func (h *IssuingBodyHandler) Create(c *gin.Context) {
	var payload request.IssuingBodyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ORGAO_INPUT", "Invalid issuing body payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapIssuingBodyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIssuingBody(body))
}

func (h *IssuingBodyHandler) GetByID(c *gin.Context) {
	body, err := h.usecase.GetByID(c.Request.Context(), c.Param("orgao_id"))
	if err != nil {
		appErr := mapIssuingBodyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssuingBody(body))
}

func (h *IssuingBodyHandler) List(c *gin.Context) {
	bodies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapIssuingBodyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssuingBodies(bodies))
}

func mapIssuingBodyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIssuingBodyPayload):
		return pkg.NewDomainErrorSimple("INVALID_ORGAO_INPUT", "Invalid issuing body payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIssuingBodyNotFound):
		return pkg.NewDomainErrorSimple("ORGAO_NOT_FOUND", "Issuing body not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
