package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "ledger-analytics/internal/errors"
	"ledger-analytics/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(err, c)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_KeepsMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "view not mounted"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("view not mounted", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_StatusMapping() {
	testCases := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_001"},
		{http.StatusForbidden, "AUTH_004"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "SYSTEM_007"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_004"},
		{http.StatusUnsupportedMediaType, "VALIDATION_003"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec, body := s.handle(echo.NewHTTPError(tc.status))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, body.Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestPlainError_HidesInternals() {
	rec, body := s.handle(errors.New("pq: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestDeadlineError_IsRetryable() {
	rec, body := s.handle(fmt.Errorf("refresh: %w", context.DeadlineExceeded))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", body.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors_SortedDetails() {
	params := struct {
		Currency string `json:"currency" validate:"currency"`
		From     string `json:"from" validate:"period"`
	}{Currency: "dollars", From: "March"}

	err := validation.GetValidator().Struct(params)
	s.Require().Error(err)

	rec, body := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{
		"currency: must be a three letter ISO 4217 currency code",
		"from: must be a month in YYYY-MM format",
	}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	CustomHTTPErrorHandler(errors.New("boom"), s.echo.NewContext(req, rec))

	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestRouting_UnknownRouteAndMethod() {
	s.echo.GET("/api/v1/analytics/risk", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/unknown", nil))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")

	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/analytics/risk", nil))
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ErrorHandlerTestSuite) TestCountsErrorsByCode() {
	counter := apiErrorsTotal.WithLabelValues("SYSTEM_006", "", "429")
	before := testutil.ToFloat64(counter)

	s.handle(echo.NewHTTPError(http.StatusTooManyRequests))

	s.Equal(before+1, testutil.ToFloat64(counter))
}
