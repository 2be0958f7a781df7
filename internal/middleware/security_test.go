package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestSecurityHeadersTestSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *SecurityHeadersTestSuite) serve(path string) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	handler := SecurityHeaders()(func(c echo.Context) error {
		nextCalled = true
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath(path)

	s.NoError(handler(c))
	return rec, nextCalled
}

func (s *SecurityHeadersTestSuite) TestAPIResponses() {
	rec, nextCalled := s.serve("/api/expenses")

	s.True(nextCalled)
	headers := rec.Header()
	s.Equal("nosniff", headers.Get("X-Content-Type-Options"))
	s.Equal("DENY", headers.Get("X-Frame-Options"))
	s.Equal("max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	s.Equal("no-referrer", headers.Get("Referrer-Policy"))
	s.Equal("no-store", headers.Get("Cache-Control"))
	s.Equal(apiContentSecurityPolicy, headers.Get("Content-Security-Policy"))
}

func (s *SecurityHeadersTestSuite) TestDocsPageAllowsScalarCDN() {
	rec, _ := s.serve("/docs")

	s.Equal(docsContentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))
	s.Contains(rec.Header().Get("Content-Security-Policy"), "https://cdn.jsdelivr.net")
}

func (s *SecurityHeadersTestSuite) TestHeadersPersistAcrossRequests() {
	for i := 0; i < 3; i++ {
		rec, _ := s.serve("/health")
		s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	}
}
