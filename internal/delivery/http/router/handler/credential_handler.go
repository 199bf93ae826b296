// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"pinboard/internal/delivery/http/response"
	"pinboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CredentialHandler holds dependencies for signup/signin handlers.
type CredentialHandler struct {
	uc usecase.CredentialUsecase
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(uc usecase.CredentialUsecase) *CredentialHandler {
	return &CredentialHandler{
		uc: uc,
	}
}

// Signup handles the registration request. On success the response carries
// the freshly minted access token the client must retain.
func (h *CredentialHandler) Signup(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "invalid signup input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Signin handles the verification request, returning the identity's
// existing access token.
func (h *CredentialHandler) Signin(c echo.Context) error {
	var input *usecase.VerifyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "invalid signin input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "invalid signin input")
	}

	output, err := h.uc.Verify(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
