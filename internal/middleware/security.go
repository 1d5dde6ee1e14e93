package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. The API only serves
// JSON, so the content security policy denies every resource type.
// HSTS is only sent when hsts is set, since development servers run over plain HTTP.
func SecurityHeaders(hsts bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			// OWASP requirement: Prevent MIME type sniffing attacks
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			if hsts {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			// Aggregates change on every refresh and describe private finances
			h.Set("Cache-Control", "no-store, private")
			h.Set("Pragma", "no-cache")

			return next(c)
		}
	}
}
