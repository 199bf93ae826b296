package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pinboard/internal/delivery/http/middleware"
	"pinboard/internal/delivery/http/validator"
	domainerrors "pinboard/internal/domain/errors"
	mockUC "pinboard/internal/mocks/usecase"
	"pinboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCredentialTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockCredentialUsecase) {
	t.Helper()

	uc := mockUC.NewMockCredentialUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewCredentialHandler(uc)
	e.POST("/signup", h.Signup)
	e.POST("/signin", h.Signin)

	return e, uc
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCredentialHandler_Signup_Success(t *testing.T) {
	e, uc := newCredentialTestEcho(t)

	userID := uuid.MustParse("0198d2fc-82f4-7000-8000-2a42f2c0de61")

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "pass123", input.Password)
		}).
		Return(&usecase.CredentialOutput{
			UserID:      userID,
			Username:    "alice",
			AccessToken: "minted_token",
		}, nil)

	rec := postJSON(e, "/signup", `{"username":"alice","password":"pass123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"response": {
			"userId": "0198d2fc-82f4-7000-8000-2a42f2c0de61",
			"username": "alice",
			"accessToken": "minted_token"
		},
		"success": true
	}`, rec.Body.String())
}

func TestCredentialHandler_Signup_SecretTooShort(t *testing.T) {
	e, uc := newCredentialTestEcho(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrSecretTooShort)

	rec := postJSON(e, "/signup", `{"username":"alice","password":"ab"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"response":"secret must be at least 5 characters long","success":false}`, rec.Body.String())
}

func TestCredentialHandler_Signup_UsernameTaken(t *testing.T) {
	e, uc := newCredentialTestEcho(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("duplicate username"))

	rec := postJSON(e, "/signup", `{"username":"alice","password":"pass123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"response":"username already taken","success":false}`, rec.Body.String())
}

func TestCredentialHandler_Signup_MissingFields(t *testing.T) {
	e, _ := newCredentialTestEcho(t)

	// Required-field validation rejects the request before the usecase runs.
	rec := postJSON(e, "/signup", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"response":"invalid signup input","success":false}`, rec.Body.String())
}

func TestCredentialHandler_Signup_MalformedJSON(t *testing.T) {
	e, _ := newCredentialTestEcho(t)

	rec := postJSON(e, "/signup", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"response":"invalid signup input","success":false}`, rec.Body.String())
}

func TestCredentialHandler_Signin_Success(t *testing.T) {
	e, uc := newCredentialTestEcho(t)

	userID := uuid.MustParse("0198d2fc-82f4-7000-8000-2a42f2c0de61")

	uc.EXPECT().
		Verify(mock.Anything, mock.AnythingOfType("*usecase.VerifyInput")).
		Return(&usecase.CredentialOutput{
			UserID:      userID,
			Username:    "alice",
			AccessToken: "stored_token",
		}, nil)

	rec := postJSON(e, "/signin", `{"username":"alice","password":"pass123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"response": {
			"userId": "0198d2fc-82f4-7000-8000-2a42f2c0de61",
			"username": "alice",
			"accessToken": "stored_token"
		},
		"success": true
	}`, rec.Body.String())
}

func TestCredentialHandler_Signin_CredentialMismatch(t *testing.T) {
	e, uc := newCredentialTestEcho(t)

	uc.EXPECT().
		Verify(mock.Anything, mock.AnythingOfType("*usecase.VerifyInput")).
		Return(nil, domainerrors.ErrCredentialMismatch.WrapMessage("secret mismatch"))

	rec := postJSON(e, "/signin", `{"username":"alice","password":"wrong12"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"response":"username or secret does not match","success":false}`, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":{"status":"ok"},"success":true}`, rec.Body.String())
}
