package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestLoggerTestSuite struct {
	suite.Suite
	buf  *bytes.Buffer
	echo *echo.Echo
}

func TestRequestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestLoggerTestSuite))
}

func (s *RequestLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
	s.echo.Use(RequestID())
	s.echo.Use(RequestLogger(slog.New(slog.NewJSONHandler(s.buf, nil))))
	s.echo.GET("/ok", func(c echo.Context) error {
		c.Set(APIKeyPrefixContextKey, "abcd1234")
		return c.NoContent(http.StatusNoContent)
	})
}

func (s *RequestLoggerTestSuite) entry() map[string]interface{} {
	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(bytes.TrimSpace(s.buf.Bytes()), &entry))
	return entry
}

func (s *RequestLoggerTestSuite) TestLogsSuccessfulRequest() {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(TraceIDHeader, "log-trace")
	s.echo.ServeHTTP(httptest.NewRecorder(), req)

	entry := s.entry()
	s.Equal("INFO", entry["level"])
	s.Equal("request", entry["msg"])
	s.Equal("log-trace", entry["trace_id"])
	s.Equal(float64(http.StatusNoContent), entry["status"])
	s.Equal("abcd1234", entry["api_key_prefix"])
}

func (s *RequestLoggerTestSuite) TestLogsNotFoundAsWarning() {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	entry := s.entry()
	s.Equal("WARN", entry["level"])
	s.Equal(float64(http.StatusNotFound), entry["status"])
	s.NotContains(entry, "api_key_prefix")
}
