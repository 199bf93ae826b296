package middleware

import (
	"pinboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GateMiddleware applies the access gate to protected routes. It only
// extracts the token and forwards the gate's decision; the decision itself
// lives in the usecase layer.
type GateMiddleware struct {
	gate usecase.AccessGate
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(gate usecase.AccessGate) *GateMiddleware {
	return &GateMiddleware{gate: gate}
}

// RequireToken validates the presented access token before the request
// reaches the protected handler. The entire Authorization header value is
// the token; there is no Bearer-prefix parsing. Downstream handlers learn
// nothing about the identity beyond "authorized".
func (m *GateMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(echo.HeaderAuthorization)

		if err := m.gate.Check(c.Request().Context(), token); err != nil {
			return err
		}

		return next(c)
	}
}
