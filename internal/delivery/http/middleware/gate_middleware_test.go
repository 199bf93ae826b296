package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pinboard/internal/domain/errors"
	mockUC "pinboard/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGateTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockAccessGate) {
	t.Helper()

	gate := mockUC.NewMockAccessGate(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	m := NewGateMiddleware(gate)
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "reached")
	}, m.RequireToken)

	return e, gate
}

func TestGateMiddleware_RequireToken_ValidToken(t *testing.T) {
	e, gate := newGateTestEcho(t)

	gate.EXPECT().Check(mock.Anything, "valid_token").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "valid_token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reached", rec.Body.String())
}

func TestGateMiddleware_RequireToken_WholeHeaderIsToken(t *testing.T) {
	e, gate := newGateTestEcho(t)

	// No Bearer parsing: the full header value goes to the gate verbatim,
	// prefix included.
	gate.EXPECT().Check(mock.Anything, "Bearer some_token").
		Return(domainerrors.ErrUnauthorized.WrapMessage("unknown token"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer some_token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateMiddleware_RequireToken_MissingToken(t *testing.T) {
	e, gate := newGateTestEcho(t)

	gate.EXPECT().Check(mock.Anything, "").
		Return(domainerrors.ErrUnauthorized.WrapMessage("no token presented"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"response":"please log in","success":false}`, rec.Body.String())
}

func TestGateMiddleware_RequireToken_LookupFailure(t *testing.T) {
	e, gate := newGateTestEcho(t)

	gate.EXPECT().Check(mock.Anything, "some_token").
		Return(domainerrors.ErrCredentialLookup.WrapMessage("token lookup failed"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "some_token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	// Store trouble answers 404 with its own message, distinct from the 401.
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"response":"could not check credentials","success":false}`, rec.Body.String())
}
