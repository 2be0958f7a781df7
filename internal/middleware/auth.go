package middleware

import (
	"errors"
	"strings"

	apierrors "expense-api/internal/errors"
	"expense-api/internal/handlers"
	"expense-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// APIKeyPrefixContextKey holds the public prefix of the authenticated key
	APIKeyPrefixContextKey = "api_key_prefix"
	// APIKeyNameContextKey holds the name the authenticated key was issued under
	APIKeyNameContextKey = "api_key_name"
)

// RequireAPIKey rejects requests without a valid "Api-Key <key>" Authorization
// header before they reach a handler. Accepted requests pass through unchanged.
func RequireAPIKey(apiKeyService services.APIKeyServiceInterface, logger services.ExpenseLoggerInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			reject := func(result string, code apierrors.ErrorCode, keyPrefix string) error {
				metrics.IncrementCounter("api_key_authentication", map[string]string{"result": result})
				logger.LogAuthenticationFailure(ctx, result, keyPrefix)
				return handlers.SendError(c, code)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return reject("missing", apierrors.AuthMissingKey, "")
			}

			key, err := apiKeyService.ExtractKeyFromHeader(authHeader)
			if err != nil {
				return reject("invalid_format", apierrors.AuthInvalidKeyFormat, "")
			}

			keyPrefix, _, _ := strings.Cut(key, services.APIKeySeparator)

			apiKey, err := apiKeyService.Authenticate(ctx, key)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrRevokedAPIKey):
					return reject("revoked", apierrors.AuthRevokedKey, keyPrefix)
				case errors.Is(err, services.ErrExpiredAPIKey):
					return reject("expired", apierrors.AuthExpiredKey, keyPrefix)
				case errors.Is(err, services.ErrInvalidAPIKey):
					return reject("invalid", apierrors.AuthInvalidKey, keyPrefix)
				default:
					metrics.IncrementCounter("api_key_authentication", map[string]string{"result": "error"})
					return handlers.SendSystemError(c, err)
				}
			}

			metrics.IncrementCounter("api_key_authentication", map[string]string{"result": "success"})

			c.Set(APIKeyPrefixContextKey, apiKey.Prefix)
			c.Set(APIKeyNameContextKey, apiKey.Name)

			return next(c)
		}
	}
}

// RequireAPIKeyUnder runs gate for every request whose path is prefix or lies
// below it. Requests no route matches are gated as well, so an unknown path or
// method under prefix answers 401 rather than 404 or 405 to anonymous callers.
func RequireAPIKeyUnder(prefix string, gate echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		gated := gate(next)
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return gated(c)
			}
			return next(c)
		}
	}
}
