package handler

import (
	"net/http"

	"pinboard/internal/delivery/http/response"
	"pinboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecordHandler holds dependencies for record handlers.
type RecordHandler struct {
	uc usecase.RecordUsecase
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{
		uc: uc,
	}
}

// CreateRecord handles the record creation request.
func (h *RecordHandler) CreateRecord(c echo.Context) error {
	var input *usecase.CreateRecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid record input")
	}

	output, err := h.uc.CreateRecord(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListRecords handles the record listing request.
func (h *RecordHandler) ListRecords(c echo.Context) error {
	output, err := h.uc.ListRecords(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
