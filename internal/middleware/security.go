package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

	// The Scalar page loads its bundle and fonts from public CDNs.
	docsContentSecurityPolicy = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net; " +
		"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: https: blob:; " +
		"connect-src 'self'; " +
		"worker-src 'self' blob:"
)

var staticSecurityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Referrer-Policy":           "no-referrer",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	"Cache-Control":             "no-store",
}

// SecurityHeaders adds security headers to responses. Handlers may override
// Cache-Control afterwards (the docs handler does).
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			for name, value := range staticSecurityHeaders {
				header.Set(name, value)
			}

			if c.Path() == "/docs" {
				header.Set("Content-Security-Policy", docsContentSecurityPolicy)
			} else {
				header.Set("Content-Security-Policy", apiContentSecurityPolicy)
			}

			return next(c)
		}
	}
}
