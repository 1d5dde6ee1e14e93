package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-analytics/internal/errors"
	"ledger-analytics/internal/models"
	"ledger-analytics/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	privateKey   *rsa.PrivateKey
	tokenService services.TokenServiceInterface
	e            *echo.Echo
	userID       uuid.UUID
}

func (s *AuthMiddlewareSuite) SetupSuite() {
	var err error
	s.privateKey, err = rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = services.NewTokenService(&s.privateKey.PublicKey, "test-issuer")
	s.e = echo.New()
	s.userID = uuid.New()
}

func (s *AuthMiddlewareSuite) token(role string, expiresAt time.Time) string {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    s.userID.String(),
		Email:     "analyst@example.com",
		Role:      role,
		TokenType: services.TokenTypeAccess,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareSuite) serve(header string, chain ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, bool) {
	called := false
	var handler echo.HandlerFunc = func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/risk", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	s.NoError(handler(s.e.NewContext(req, rec)))
	return rec, called
}

func (s *AuthMiddlewareSuite) codeOf(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidTokenSetsContext() {
	var gotUser interface{}
	var gotRole interface{}
	capture := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			gotUser = c.Get("user_id")
			gotRole = c.Get("user_role")
			return next(c)
		}
	}

	rec, called := s.serve("Bearer "+s.token(models.RoleAnalyst, time.Now().Add(time.Hour)), RequireAuth(s.tokenService), capture)
	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.userID, gotUser)
	s.Equal(models.RoleAnalyst, gotRole)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodRS256, models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "test-issuer", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           s.userID.String(),
		TokenType:        services.TokenTypeAccess,
	}).SignedString(other)
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "AUTH_001"},
		{"not bearer", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "AUTH_003"},
		{"expired", "Bearer " + s.token(models.RoleAnalyst, time.Now().Add(-time.Minute)), http.StatusUnauthorized, "AUTH_002"},
		{"signed by another key", "Bearer " + foreign, http.StatusUnauthorized, "AUTH_003"},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized, "AUTH_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, called := s.serve(tc.header, RequireAuth(s.tokenService))
			s.False(called)
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.codeOf(rec))
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAdmin() {
	rec, called := s.serve("Bearer "+s.token(models.RoleAdmin, time.Now().Add(time.Hour)), RequireAuth(s.tokenService), RequireAdmin())
	s.True(called)
	s.Equal(http.StatusOK, rec.Code)

	rec, called = s.serve("Bearer "+s.token(models.RoleAnalyst, time.Now().Add(time.Hour)), RequireAuth(s.tokenService), RequireAdmin())
	s.False(called)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_004", s.codeOf(rec))
}

func (s *AuthMiddlewareSuite) TestRequireRole_MissingRoleInContext() {
	rec, called := s.serve("", RequireRole(models.RoleAnalyst, models.RoleAdmin))
	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_003", s.codeOf(rec))
}
