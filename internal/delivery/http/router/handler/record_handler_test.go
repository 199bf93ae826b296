package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func newRecordTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockRecordUsecase) {
	t.Helper()

	uc := mockUC.NewMockRecordUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewRecordHandler(uc)
	e.POST("/records", h.CreateRecord)
	e.GET("/records", h.ListRecords)

	return e, uc
}

func TestRecordHandler_CreateRecord_Success(t *testing.T) {
	e, uc := newRecordTestEcho(t)

	recordID := uuid.MustParse("0198d2fc-82f4-7000-8000-7b1fb1f0aa02")

	uc.EXPECT().
		CreateRecord(mock.Anything, mock.AnythingOfType("*usecase.CreateRecordInput")).
		Return(&usecase.RecordOutput{
			RecordID: recordID,
			Message:  "hello",
		}, nil)

	rec := postJSON(e, "/records", `{"message":"hello"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"response": {
			"recordId": "0198d2fc-82f4-7000-8000-7b1fb1f0aa02",
			"message": "hello"
		},
		"success": true
	}`, rec.Body.String())
}

func TestRecordHandler_CreateRecord_EmptyMessage(t *testing.T) {
	e, uc := newRecordTestEcho(t)

	uc.EXPECT().
		CreateRecord(mock.Anything, mock.AnythingOfType("*usecase.CreateRecordInput")).
		Return(nil, domainerrors.ErrMessageEmpty)

	rec := postJSON(e, "/records", `{"message":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"response":"message must not be empty","success":false}`, rec.Body.String())
}

func TestRecordHandler_ListRecords_Success(t *testing.T) {
	e, uc := newRecordTestEcho(t)

	uc.EXPECT().
		ListRecords(mock.Anything).
		Return([]*usecase.RecordOutput{
			{RecordID: uuid.MustParse("0198d2fc-82f4-7000-8000-7b1fb1f0aa02"), Message: "first"},
			{RecordID: uuid.MustParse("0198d2fc-82f4-7000-8000-7b1fb1f0aa03"), Message: "second"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"response": [
			{"recordId": "0198d2fc-82f4-7000-8000-7b1fb1f0aa02", "message": "first"},
			{"recordId": "0198d2fc-82f4-7000-8000-7b1fb1f0aa03", "message": "second"}
		],
		"success": true
	}`, rec.Body.String())
}

func TestRecordHandler_ListRecords_Empty(t *testing.T) {
	e, uc := newRecordTestEcho(t)

	uc.EXPECT().
		ListRecords(mock.Anything).
		Return([]*usecase.RecordOutput{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":[],"success":true}`, rec.Body.String())
}
