package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger-analytics/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(header string, inner echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(RequestID()(inner)(c))
	return rec
}

// TestRequestID_GeneratesUUID tests that middleware generates a UUID trace ID
func (s *RequestIDTestSuite) TestRequestID_GeneratesUUID() {
	var contextTraceID string
	rec := s.serve("", func(c echo.Context) error {
		contextTraceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, contextTraceID)
	s.Equal(contextTraceID, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_UsesExistingTraceID tests that middleware uses existing trace ID from request
func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	rec := s.serve("existing-trace-id-12345", func(c echo.Context) error {
		s.Equal("existing-trace-id-12345", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedTraceID() {
	oversized := strings.Repeat("a", maxTraceIDLength+1)
	rec := s.serve(oversized, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.NotEqual(oversized, rec.Header().Get(TraceIDHeader))
	s.Len(rec.Header().Get(TraceIDHeader), 36)
}

func (s *RequestIDTestSuite) TestRequestID_PropagatesCorrelationID() {
	s.serve("refresh-42", func(c echo.Context) error {
		s.Equal("refresh-42", services.CorrelationID(c.Request().Context()))
		return c.NoContent(http.StatusOK)
	})
}

// TestGetTraceID_ReturnsEmptyWhenNotSet tests GetTraceID when trace ID not set
func (s *RequestIDTestSuite) TestGetTraceID_ReturnsEmptyWhenNotSet() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
